package v11n

// Names of the built-in versifications.
const (
	KJV     = "KJV"
	NRSV    = "NRSV"
	Vulgate = "Vulgate"
	MT      = "MT"
)

// mtOrder is the Tanakh book order: Torah, Nevi'im, Ketuvim.
var mtOrder = []string{
	"Gen", "Exod", "Lev", "Num", "Deut",
	"Josh", "Judg", "1Sam", "2Sam", "1Kgs", "2Kgs",
	"Isa", "Jer", "Ezek",
	"Hos", "Joel", "Amos", "Obad", "Jonah", "Mic", "Nah", "Hab", "Zeph", "Hag", "Zech", "Mal",
	"Ps", "Prov", "Job", "Song", "Ruth", "Lam", "Eccl", "Esth", "Dan", "Ezra", "Neh", "1Chr", "2Chr",
}

// builtinDefinitions returns fresh copies of the shipped canon tables.
func builtinDefinitions() []*Definition {
	return []*Definition{
		kjvDefinition(),
		nrsvDefinition(),
		vulgateDefinition(),
		mtDefinition(),
	}
}

func kjvDefinition() *Definition {
	d := &Definition{
		Name:        KJV,
		Description: "King James Version, 66 books",
	}
	d.Books = append(d.Books, kjvOT...)
	d.Books = append(d.Books, kjvNT...)
	return d.clone()
}

// nrsvDefinition is KJV with the NRSV chapter endings of 2 Cor 13, 3 John
// and Revelation 12.
func nrsvDefinition() *Definition {
	d := kjvDefinition()
	d.Name = NRSV
	d.Description = "New Revised Standard Version, 66 books"
	for i := range d.Books {
		switch d.Books[i].OSIS {
		case "2Cor":
			d.Books[i].Chapters[12] = 13
		case "3John":
			d.Books[i].Chapters[0] = 15
		case "Rev":
			d.Books[i].Chapters[11] = 18
		}
	}
	return d
}

func vulgateDefinition() *Definition {
	d := &Definition{
		Name:        Vulgate,
		Description: "Latin Vulgate, 73 books",
		Books:       vulgateBooks,
	}
	return d.clone()
}

// mtDefinition is an Old Testament only canon in Tanakh order. Joel and
// Malachi use the Hebrew chapter divisions; other books keep the KJV counts.
func mtDefinition() *Definition {
	byOSIS := make(map[string]BookDefinition, len(kjvOT))
	for _, b := range kjvOT {
		byOSIS[b.OSIS] = b
	}
	byOSIS["Joel"] = BookDefinition{OSIS: "Joel", Chapters: []int{20, 27, 5, 21}}
	byOSIS["Mal"] = BookDefinition{OSIS: "Mal", Chapters: []int{14, 17, 24}}

	d := &Definition{
		Name:        MT,
		Description: "Masoretic Text, Hebrew Bible in Tanakh order",
	}
	for _, osis := range mtOrder {
		d.Books = append(d.Books, byOSIS[osis])
	}
	return d.clone()
}
