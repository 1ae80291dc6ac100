package config

var configTemplate = `# config.yml

# Automation
# Each entry describes one series to follow. Entries run in the order listed.
#
automate:
  # Slug of the series on Azuki, taken from the series URL
  #
  - slug: "the-example-series"

    # Title used for output files and upload names
    #
    title: "The Example Series"

    # Output format of the generated files
    #
    outputFormat: "{title} - c{chapter}"

    # Chapter number to start from
    #
    # Optional
    #
    #startFrom: 1

    # Append the chapter name to the output
    #
    # Default: false
    #
    includeChapterName: false

    # Upload finished chapters to Nyaa
    #
    # Default: false
    #
    autoUpload: false

    # Description used for Nyaa uploads
    #
    # Optional
    #
    #nyaaDescription: ""

# Nyaa credentials
#
nyaaInfo:
  username: ""
  password: ""

# Azuki credentials
#
azukiAuth:
  username: ""
  password: ""

# Database
#
db:
  # Path of the local database
  #
  # Default: "anmitsu.db"
  #
  path: "anmitsu.db"

# anmitsu logs file
# If not defined, logs to stdout
# Make sure to use forward slashes and include the filename with extension. e.g. "logs/anmitsu.log", "C:/anmitsu/logs/anmitsu.log"
#
# Optional
#
#logPath: ""

# Log level
#
# Default: "DEBUG"
#
# Options: "ERROR", "DEBUG", "INFO", "WARN", "TRACE"
#
logLevel: "DEBUG"

# Log Max Size
#
# Default: 50
#
# Max log size in megabytes
#
#logMaxSize: 50

# Log Max Backups
#
# Default: 3
#
# Max amount of old log files
#
#logMaxBackups: 3
`
