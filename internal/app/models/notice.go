package models

// NoticeType tags a notice on the home page.
type NoticeType string

const (
	NoticeGeneral NoticeType = "General"
	NoticeExam    NoticeType = "Exam"
	NoticeEvent   NoticeType = "Event"
)

// Valid reports whether t is a known notice type.
func (t NoticeType) Valid() bool {
	switch t {
	case NoticeGeneral, NoticeExam, NoticeEvent:
		return true
	}
	return false
}

// Notice is a display-only announcement.
type Notice struct {
	ID    string     `yaml:"id" json:"id"`
	Title string     `yaml:"title" json:"title"`
	Date  string     `yaml:"date" json:"date"`
	Type  NoticeType `yaml:"type" json:"type"`
	IsNew bool       `yaml:"is_new,omitempty" json:"isNew"`
}

// Publication is an entry of the "Latest Publications" card.
type Publication struct {
	Title    string `yaml:"title" json:"title"`
	Subtitle string `yaml:"subtitle" json:"subtitle"`
	Kind     string `yaml:"kind" json:"kind"`
}
