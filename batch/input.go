package batch

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/fwojciec/lawtree"
)

// ReadInputs reads a stream of JSON input objects, one document each:
// {"id": "...", "title": "...", "type": "...", "content": "..."}.
// Objects are usually written one per line but any whitespace separates them.
func ReadInputs(r io.Reader) ([]*lawtree.Input, error) {
	dec := json.NewDecoder(r)
	var inputs []*lawtree.Input
	for {
		var in lawtree.Input
		err := dec.Decode(&in)
		if errors.Is(err, io.EOF) {
			return inputs, nil
		}
		if err != nil {
			return nil, lawtree.Errorf(lawtree.EINVALID, "input %d: %v", len(inputs)+1, err)
		}
		inputs = append(inputs, &in)
	}
}
