package index

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"github.com/ulikunitz/xz"

	"github.com/FocuswithJustin/JuniperV11n/core/errors"
	"github.com/FocuswithJustin/JuniperV11n/core/v11n"
	"github.com/FocuswithJustin/JuniperV11n/internal/logging"
)

// TSVHeader is the first line of a TSV export.
const TSVHeader = "ordinal\tosis\tbook\tchapter\tverse\ttestament\ttestament_ordinal"

// WriteTSV writes a header line followed by one line per ordinal of v.
func WriteTSV(w io.Writer, v *v11n.Versification) error {
	start := time.Now()
	if err := writeTSV(w, v); err != nil {
		return err
	}
	logging.IndexExported(v.Name(), "tsv", v.MaximumOrdinal()+1, time.Since(start))
	return nil
}

// WriteTSVXZ is WriteTSV wrapped in an xz stream.
func WriteTSVXZ(w io.Writer, v *v11n.Versification) error {
	start := time.Now()
	xw, err := xz.NewWriter(w)
	if err != nil {
		return errors.Wrap(err, "create xz writer")
	}
	if err := writeTSV(xw, v); err != nil {
		xw.Close()
		return err
	}
	if err := xw.Close(); err != nil {
		return errors.Wrap(err, "close xz writer")
	}
	logging.IndexExported(v.Name(), "tsv.xz", v.MaximumOrdinal()+1, time.Since(start))
	return nil
}

func writeTSV(w io.Writer, v *v11n.Versification) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(TSVHeader)
	bw.WriteByte('\n')

	var buf []byte
	err := eachRow(v, func(r Row) error {
		buf = buf[:0]
		buf = strconv.AppendInt(buf, int64(r.Ordinal), 10)
		buf = append(buf, '\t')
		buf = append(buf, r.OSIS...)
		buf = append(buf, '\t')
		buf = append(buf, r.Book...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(r.Chapter), 10)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(r.Verse), 10)
		buf = append(buf, '\t')
		buf = append(buf, r.Testament...)
		buf = append(buf, '\t')
		buf = strconv.AppendInt(buf, int64(r.TestamentOrdinal), 10)
		buf = append(buf, '\n')
		_, err := bw.Write(buf)
		return err
	})
	if err != nil {
		return errors.Wrap(err, "write tsv")
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "flush tsv")
	}
	return nil
}
