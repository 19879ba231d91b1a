package cli

import (
	"encoding/json"
	"fmt"
)

type errorView struct {
	Error string `json:"error"`
}

type okView struct {
	Status string `json:"status"`
}

// print writes a titled JSON block. Concurrent callers never interleave.
func (a *App) print(title string, v any, err error) {
	switch {
	case err != nil:
		v = errorView{Error: err.Error()}
	case v == nil:
		v = okView{Status: "ok"}
	}

	data, mErr := json.MarshalIndent(v, "", "  ")
	if mErr != nil {
		data = []byte(fmt.Sprintf("%q", mErr.Error()))
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	fmt.Fprintf(a.out, "== %s ==\n%s\n", title, data)
}
