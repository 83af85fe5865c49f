package comment

import (
	"strings"

	"github.com/rubywriter/rubywriter/internal/util"
)

// getPosition creates a human readable string representing a byte offset in
// the source file. The format of the string is as follows based on the
// positional info available:
//
// Info 					|		Formatting
// ------------------------------------------------------------------
// filename, valid offset	|	filename line:column
// filename, no offset		|	filename
// no filename, offset		|	line:column
// neither					|	""
func getPosition(source []byte, offset int, fileName string) string {
	path := strings.Builder{}
	path.WriteString(fileName)

	pos := util.OffsetPosition(source, offset)
	if offset < 0 || !pos.IsValid() {
		return path.String()
	}
	if path.Len() != 0 {
		path.WriteByte(' ')
	}
	path.WriteString(pos.String())
	return path.String()
}
