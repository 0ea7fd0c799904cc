package effectchain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var errDuplicateNodeID = errors.New("duplicate node id")

// chainNode is a JSON-serializable node of a serial chain.
type chainNode struct {
	ID       string `json:"id"`
	Type     string `json:"type"`
	Bypassed bool   `json:"bypassed"`
	Params   any    `json:"params"`
}

// chainState is the root JSON structure of a chain description.
type chainState struct {
	Nodes []chainNode `json:"nodes"`
}

// parseChain decodes a JSON chain description into node parameters in
// processing order. An empty string yields an empty chain.
func parseChain(raw string) ([]Params, error) {
	if raw == "" {
		return nil, nil
	}

	var state chainState
	if err := json.Unmarshal([]byte(raw), &state); err != nil {
		return nil, fmt.Errorf("effectchain: invalid chain json: %w", err)
	}

	nodes := make([]Params, 0, len(state.Nodes))
	seen := make(map[string]struct{}, len(state.Nodes))

	for i, n := range state.Nodes {
		if n.Type == "" {
			return nil, fmt.Errorf("effectchain: node %d has no type", i)
		}

		id := n.ID
		if id == "" {
			id = fmt.Sprintf("%s-%d", n.Type, i)
		}

		if _, dup := seen[id]; dup {
			return nil, fmt.Errorf("effectchain: %w: %s", errDuplicateNodeID, id)
		}
		seen[id] = struct{}{}

		num, str, flags := parseNodeParams(n.Params)
		nodes = append(nodes, Params{
			ID:       id,
			Type:     n.Type,
			Bypassed: n.Bypassed,
			Num:      num,
			Str:      str,
			Bool:     flags,
		})
	}

	return nodes, nil
}

// parseNodeParams splits a raw JSON params object by value type. Values of
// other types are dropped.
func parseNodeParams(raw any) (map[string]float64, map[string]string, map[string]bool) {
	num := map[string]float64{}
	str := map[string]string{}
	flags := map[string]bool{}

	params, ok := raw.(map[string]any)
	if !ok {
		return num, str, flags
	}

	for k, v := range params {
		switch t := v.(type) {
		case float64:
			num[k] = t
		case string:
			str[k] = t
		case bool:
			flags[k] = t
		}
	}

	return num, str, flags
}
