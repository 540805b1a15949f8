// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plist

import (
	"fmt"

	"github.com/goccy/go-json"
)

// MarshalJSON encodes the list as a JSON array. The empty list encodes as [].
func (l List[T]) MarshalJSON() ([]byte, error) {
	items := l.items()
	if items == nil {
		items = []T{}
	}
	return json.Marshal(items)
}

// UnmarshalJSON decodes a JSON array into a new store. If the receiver
// already belongs to a lineage, its equality and settings carry over.
func (l *List[T]) UnmarshalJSON(data []byte) error {
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return fmt.Errorf("plist: decode list: %w", err)
	}
	*l = l.fork(items)
	return nil
}
