package api

// TokenPair is the credential pair returned by the login endpoint.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// UserProfile is returned by the profile endpoint. Role is the discriminant
// driving dashboard dispatch; claims inside the tokens are never used for
// that.
type UserProfile struct {
	ID          int64  `json:"id"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Role        string `json:"role"`
	Institution string `json:"institution"`
	Photo       string `json:"photo"`
}

// Event is the thin client-side shape of a conference event. The full
// payload is backend-owned.
type Event struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Venue     string `json:"venue"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

// Submission is the thin client-side shape of a paper submission.
type Submission struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event"`
	Title   string `json:"title"`
	Status  string `json:"status"`
}

// PaperSubmission is the payload for submitting a paper to an event.
type PaperSubmission struct {
	EventID  int64  `json:"event"`
	Title    string `json:"title"`
	Abstract string `json:"abstract"`
	Keywords string `json:"keywords"`
}
