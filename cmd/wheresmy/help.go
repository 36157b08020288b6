package wheresmy

import "embed"

// helpTopics holds the markdown topics served by 'wheresmy help <topic>'
//
//go:embed help
var helpTopics embed.FS

const helpTopicsDir = "help"
