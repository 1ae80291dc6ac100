package config

import (
	"fmt"
	"strings"

	"anmitsu/internal/domain"

	"gopkg.in/yaml.v3"
)

// ParseString is Parse for documents already held as text.
func ParseString(document string) (*domain.Config, error) {
	return Parse([]byte(document))
}

// Parse builds a validated Config from a YAML document. It stops at the first
// problem it finds and never returns a partially filled Config.
func Parse(document []byte) (*domain.Config, error) {
	var raw any
	if err := yaml.Unmarshal(document, &raw); err != nil {
		return nil, &ParseError{Err: err}
	}

	root, err := newNode("", "", raw)
	if err != nil {
		return nil, err
	}

	return parseRoot(root)
}

func parseRoot(root node) (*domain.Config, error) {
	var dbPath *string
	if db, ok, err := root.optionalMap("db"); err != nil {
		return nil, err
	} else if ok {
		if dbPath, err = db.optionalString("path"); err != nil {
			return nil, err
		}
	}
	database := NewDatabase(dbPath)

	entries, err := root.requiredSeq("automate")
	if err != nil {
		return nil, err
	}

	tasks := make([]domain.AutomationTask, 0, len(entries))
	for i, entry := range entries {
		n, err := newNode("", fmt.Sprintf("automate[%d]", i), entry)
		if err != nil {
			return nil, err
		}

		task, err := parseAutomationTask(n)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}

	nyaa, err := parseCredentialBlock(root, "nyaaInfo")
	if err != nil {
		return nil, err
	}

	azuki, err := parseCredentialBlock(root, "azukiAuth")
	if err != nil {
		return nil, err
	}

	return &domain.Config{
		Automate:  tasks,
		NyaaAuth:  nyaa,
		AzukiAuth: azuki,
		DB:        database,
	}, nil
}

func parseAutomationTask(n node) (domain.AutomationTask, error) {
	var (
		task domain.AutomationTask
		err  error
	)

	if task.Slug, err = n.requiredString("slug"); err != nil {
		return domain.AutomationTask{}, err
	}

	if task.Title, err = n.requiredString("title"); err != nil {
		return domain.AutomationTask{}, err
	}
	task.Title = strings.TrimSpace(task.Title)

	if task.OutputFormat, err = n.requiredString("outputFormat"); err != nil {
		return domain.AutomationTask{}, err
	}
	task.OutputFormat = strings.TrimSpace(task.OutputFormat)

	if task.StartFrom, err = n.optionalInt("startFrom"); err != nil {
		return domain.AutomationTask{}, err
	}

	if task.IncludeChapterName, err = n.optionalBool("includeChapterName", false); err != nil {
		return domain.AutomationTask{}, err
	}

	if task.AutoUpload, err = n.optionalBool("autoUpload", false); err != nil {
		return domain.AutomationTask{}, err
	}

	if task.NyaaDescription, err = n.optionalString("nyaaDescription"); err != nil {
		return domain.AutomationTask{}, err
	}
	if task.NyaaDescription != nil {
		trimmed := strings.TrimSpace(*task.NyaaDescription)
		task.NyaaDescription = &trimmed
	}

	return task, nil
}

func parseCredentialBlock(root node, key string) (domain.Credential, error) {
	n, err := root.requiredMap(key)
	if err != nil {
		return domain.Credential{}, err
	}
	return parseCredential(n)
}

func parseCredential(n node) (domain.Credential, error) {
	username, err := n.requiredString("username")
	if err != nil {
		return domain.Credential{}, err
	}

	password, err := n.requiredString("password")
	if err != nil {
		return domain.Credential{}, err
	}

	return domain.Credential{Username: username, Password: password}, nil
}

// NewDatabase uses path verbatim unless it is nil or empty, in which case
// domain.DefaultDatabasePath is used.
func NewDatabase(path *string) domain.Database {
	if path == nil || *path == "" {
		return domain.Database{Path: domain.DefaultDatabasePath}
	}
	return domain.Database{Path: *path}
}
