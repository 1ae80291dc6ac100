package domain

// DefaultDatabasePath is used when the document has no db.path.
const DefaultDatabasePath = "anmitsu.db"

// Settings holds runtime settings of the host process. They are read from the
// same file as Config but are not part of the automation document.
type Settings struct {
	Version       string
	ConfigPath    string
	ConfigFile    string
	LogPath       string
	LogLevel      string
	LogMaxSize    int // in megabytes
	LogMaxBackups int
}

// Config is the parsed automation document. Values are built once per load
// and must not be mutated; use Clone to get a private copy.
type Config struct {
	Automate  []AutomationTask
	NyaaAuth  Credential
	AzukiAuth Credential
	DB        Database
}

// AutomationTask describes one series to scrape and optionally upload.
type AutomationTask struct {
	Slug               string
	Title              string
	OutputFormat       string
	StartFrom          *int
	IncludeChapterName bool
	AutoUpload         bool
	NyaaDescription    *string
}

type Credential struct {
	Username string
	Password string
}

// String keeps passwords out of logs and %v output.
func (c Credential) String() string {
	if c.Password == "" {
		return c.Username
	}
	return c.Username + ":********"
}

type Database struct {
	Path string
}

// Clone returns a deep copy of c.
func (c *Config) Clone() *Config {
	if c == nil {
		return nil
	}

	out := *c
	if c.Automate != nil {
		out.Automate = make([]AutomationTask, len(c.Automate))
		for i, task := range c.Automate {
			out.Automate[i] = task.Clone()
		}
	}

	return &out
}

// Clone returns a copy of t that shares no pointers with it.
func (t AutomationTask) Clone() AutomationTask {
	if t.StartFrom != nil {
		v := *t.StartFrom
		t.StartFrom = &v
	}
	if t.NyaaDescription != nil {
		v := *t.NyaaDescription
		t.NyaaDescription = &v
	}
	return t
}
