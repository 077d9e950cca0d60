package commands

const (
	_etc = "/usr/local/etc/gsheet-upload"

	DEFAULT_CREDENTIALS = _etc + "/.google/credentials.json"
)
