package types

// Dreamer is a community character. Role references Role.ID; the role
// record itself is not embedded. Level is derived from Points and is
// never persisted.
type Dreamer struct {
	ID         string            `json:"id"`
	Name       string            `json:"name"`
	Role       string            `json:"role"`
	Title      string            `json:"title"`
	Avatar     string            `json:"avatar"`
	CoverImage string            `json:"coverImage"`
	Bio        string            `json:"bio"`
	Themes     []string          `json:"themes"`
	Socials    map[string]string `json:"socials"`
	Points     int               `json:"points"`
	Level      int               `json:"level"`
}

type Sponsor struct {
	ID     string   `json:"id"`
	Name   string   `json:"name"`
	Title  string   `json:"title"`
	Avatar string   `json:"avatar"`
	Bio    string   `json:"bio"`
	Themes []string `json:"themes"`
}

type AcademyStudent struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Track        string `json:"track"`
	Avatar       string `json:"avatar"`
	EnrolledDate string `json:"enrolledDate"`
}
