/*
 * manifest.go, part of BioSimSpace.
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 2 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 */

package gateway

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	bss "github.com/yuanlongping/BioSimSpace"
)

// LoadManifest reads a YAML file mapping input names to values (a scalar
// for string and file inputs, a sequence for file sets) and applies it to
// the node's inputs. Unknown names are an error, so that typos in a
// manifest do not silently run a node on defaults.
func (N *Node) LoadManifest(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return bss.NewError(fmt.Sprintf("LoadManifest: %v", err))
	}
	var raw map[string]interface{}
	if err := yaml.Unmarshal(b, &raw); err != nil {
		return bss.NewError(fmt.Sprintf("LoadManifest: %s: %v", path, err))
	}
	for name, val := range raw {
		if _, ok := N.inputs[name]; !ok {
			return bss.NewError(fmt.Sprintf("LoadManifest: %s: unknown input %q", path, name))
		}
		var values []string
		switch v := val.(type) {
		case string:
			values = []string{v}
		case []interface{}:
			for _, item := range v {
				values = append(values, fmt.Sprint(item))
			}
		default:
			values = []string{fmt.Sprint(v)}
		}
		if err := N.SetInput(name, values...); err != nil {
			return err
		}
	}
	return nil
}

// SaveManifest writes the current input values of the node as a YAML
// manifest, so a run can be reproduced later.
func (N *Node) SaveManifest(path string) error {
	out := make(map[string]interface{})
	for _, name := range N.inputOrder {
		req := N.inputs[name]
		if !req.set {
			continue
		}
		if req.Kind == FileSet {
			out[name] = req.values
		} else {
			out[name] = req.values[0]
		}
	}
	b, err := yaml.Marshal(out)
	if err != nil {
		return bss.NewError(fmt.Sprintf("SaveManifest: %v", err))
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return bss.NewError(fmt.Sprintf("SaveManifest: %v", err))
	}
	return nil
}
