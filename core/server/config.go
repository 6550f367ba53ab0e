package server

// Config holds configuration for the HTTP server and the served identity.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3939"`
	// Title is the server title shown in the client's server list.
	Title string `mapstructure:"title" default:"Score Sync"`
	// Description is the server description shown in the client.
	Description string `mapstructure:"description" default:""`
}

// OpenURL builds the deep link the client follows to connect to this server.
func (c Config) OpenURL(host string) string {
	return "https://open.sonolus.com/" + host + ":" + c.Port + "/"
}
