package model

// Keys under which the session values are persisted.
const (
	KeyIdentity = "stagiaireId"
	KeyToken    = "token"
)

// Session is the pair of persisted values every operation reads before it
// talks to the API. Either field may be empty.
type Session struct {
	Identity string
	Token    string
}

func (s Session) HasIdentity() bool { return s.Identity != "" }

func (s Session) HasToken() bool { return s.Token != "" }
