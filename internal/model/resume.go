package model

// Resume holds the extracted text of a user's uploaded résumé.
// At most one row exists per email; uploads replace via upsert.
type Resume struct {
	Email string `json:"email"`
	Name  string `json:"name"`
	Text  string `json:"resumeData"`
}
