package models

// Kind is the type tag of a result item
type Kind string

const (
	KindPerson Kind = "person"
	KindFile   Kind = "file"
	KindFolder Kind = "folder"
	KindChat   Kind = "chat"
	KindList   Kind = "list"
)

// FileSubtype distinguishes the file icons
type FileSubtype string

const (
	FileSubtypeImage   FileSubtype = "image"
	FileSubtypeVideo   FileSubtype = "video"
	FileSubtypeGeneric FileSubtype = "generic"
)

// ResultItem is a candidate search result. The set of implementations is
// closed: Person, File, Folder, Chat and List.
type ResultItem interface {
	Kind() Kind
	isResultItem()
}

// Person is a user account
type Person struct {
	Name           string
	Status         string
	AvatarGlyph    string
	StatusColorTag string
}

// File is a single document or media file
type File struct {
	Name     string
	Location string
	Time     string
	Subtype  FileSubtype
}

// Folder groups files
type Folder struct {
	Name     string
	Count    string
	Location string
	Time     string
}

// Chat is a conversation
type Chat struct {
	Name             string
	LastMessage      string
	Time             string
	ParticipantCount int
}

// List is a checklist
type List struct {
	Name           string
	ItemCount      int
	CompletedCount int
	Time           string
}

func (Person) Kind() Kind { return KindPerson }
func (File) Kind() Kind   { return KindFile }
func (Folder) Kind() Kind { return KindFolder }
func (Chat) Kind() Kind   { return KindChat }
func (List) Kind() Kind   { return KindList }

func (Person) isResultItem() {}
func (File) isResultItem()   {}
func (Folder) isResultItem() {}
func (Chat) isResultItem()   {}
func (List) isResultItem()   {}

// NameOf returns the display name of any result item
func NameOf(item ResultItem) string {
	switch it := item.(type) {
	case Person:
		return it.Name
	case File:
		return it.Name
	case Folder:
		return it.Name
	case Chat:
		return it.Name
	case List:
		return it.Name
	default:
		panic("models: unknown result item variant")
	}
}
