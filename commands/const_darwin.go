package commands

const (
	_etc = "/usr/local/etc/com.github.gsheet-upload"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
