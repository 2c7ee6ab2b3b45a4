package inline

import (
	"encoding/json"
	"io"

	"github.com/folio-cli/folio/media"
)

type Entry struct {
	Kind media.Kind  `json:"kind"`
	Item *media.Item `json:"item"`
	// Status is the preload outcome, set only when checking.
	Status string `json:"status,omitempty"`
	Error  string `json:"error,omitempty"`
}

type Output struct {
	Source string   `json:"source"`
	Query  string   `json:"query,omitempty"`
	Result []*Entry `json:"result"`
}

func writeJson(out io.Writer, output *Output) error {
	if output.Result == nil {
		output.Result = []*Entry{}
	}
	return json.NewEncoder(out).Encode(output)
}
