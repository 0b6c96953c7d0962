package protocol

// Authentication carries the username and token presented with every
// request on a connection.
type Authentication struct {
	Username string `codec:"USER"`
	Token    string `codec:"TOKEN"`
}

// NewAuthentication builds an Authentication from a username and token.
func NewAuthentication(username, token string) Authentication {
	return Authentication{Username: username, Token: token}
}
