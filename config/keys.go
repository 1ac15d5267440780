package config

const (
	delimiter = "."

	KeyPrefix = "config"

	KeyLogPrefix  = KeyPrefix + delimiter + "log"
	KeyLogLevel   = KeyLogPrefix + delimiter + "level"
	KeyLogConsole = KeyLogPrefix + delimiter + "console"

	KeyMemoPrefix    = KeyPrefix + delimiter + "memo"
	KeyMemoTableSize = KeyMemoPrefix + delimiter + "table_size"
	KeyMemoStore     = KeyMemoPrefix + delimiter + "store"

	KeyShowcasePrefix   = KeyPrefix + delimiter + "showcase"
	KeyShowcaseSections = KeyShowcasePrefix + delimiter + "sections"
)

// Keys lists every key Lookup resolves, in file order.
var Keys = []string{
	KeyLogLevel,
	KeyLogConsole,
	KeyMemoTableSize,
	KeyMemoStore,
	KeyShowcaseSections,
}
