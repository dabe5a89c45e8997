package appconf

// Environment describes which mode the application is running in. Test gets
// special treatment in a few places, e.g. catalogdb refuses to write a
// database file to disk under Test.
type Environment int

const (
	Development Environment = iota
	Test
	Production
)

// Config holds all the runtime configuration settings for the Application.
// These are read in from command-line flags (and optionally a .env file)
// when the application starts.
type Config struct {
	Port      int
	Env       Environment
	ApiKeys   []string
	DataPath  string
	DBPath    string
	RateLimit int
	Verbose   bool
}

// EnvFlagToEnvironment maps the -env flag value to an Environment. Anything
// unrecognized is treated as development.
func EnvFlagToEnvironment(flag string) Environment {
	switch flag {
	case "production":
		return Production
	case "test":
		return Test
	default:
		return Development
	}
}

func (e Environment) String() string {
	switch e {
	case Production:
		return "production"
	case Test:
		return "test"
	default:
		return "development"
	}
}
