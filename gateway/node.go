/*
 * node.go, part of BioSimSpace.
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

//Package gateway provides the declarative input/output manifest of a
//workflow node: typed requirements, their values, and the final check that
//every declared output was produced.
package gateway

import (
	"fmt"
	"os"
	"strings"

	bss "github.com/yuanlongping/BioSimSpace"
)

// Kind is the type of a requirement.
type Kind int

const (
	String Kind = iota
	File
	FileSet
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case File:
		return "file"
	case FileSet:
		return "fileset"
	}
	return "unknown"
}

// Requirement is one typed input or output of a node.
type Requirement struct {
	Kind     Kind
	Help     string
	Default  string
	Optional bool
	values   []string
	set      bool
}

// StringReq returns a string requirement with the given help text.
func StringReq(help string) *Requirement {
	return &Requirement{Kind: String, Help: help}
}

// FileReq returns a single-file requirement with the given help text.
func FileReq(help string) *Requirement {
	return &Requirement{Kind: File, Help: help}
}

// FileSetReq returns a file-set requirement with the given help text.
func FileSetReq(help string) *Requirement {
	return &Requirement{Kind: FileSet, Help: help}
}

// Author identifies one author of a node.
type Author struct {
	Name        string
	Email       string
	Affiliation string
}

// Node is a workflow node: a description, a set of typed inputs, and a set
// of declared outputs.
type Node struct {
	description string
	authors     []Author
	license     string
	inputs      map[string]*Requirement
	inputOrder  []string
	outputs     map[string]*Requirement
	outputOrder []string
}

// New returns a node with the given description.
func New(description string) *Node {
	return &Node{
		description: description,
		inputs:      make(map[string]*Requirement),
		outputs:     make(map[string]*Requirement),
	}
}

// Description returns the node description.
func (N *Node) Description() string {
	return N.description
}

// AddAuthor records an author of the node.
func (N *Node) AddAuthor(name, email, affiliation string) {
	N.authors = append(N.authors, Author{Name: name, Email: email, Affiliation: affiliation})
}

// Authors returns the recorded authors.
func (N *Node) Authors() []Author {
	return N.authors
}

// SetLicense records the license of the node.
func (N *Node) SetLicense(license string) {
	N.license = license
}

// License returns the recorded license.
func (N *Node) License() string {
	return N.license
}

// AddInput declares an input requirement. Redeclaring a name replaces the
// previous requirement.
func (N *Node) AddInput(name string, req *Requirement) {
	if _, ok := N.inputs[name]; !ok {
		N.inputOrder = append(N.inputOrder, name)
	}
	N.inputs[name] = req
}

// AddOutput declares an output requirement.
func (N *Node) AddOutput(name string, req *Requirement) {
	if _, ok := N.outputs[name]; !ok {
		N.outputOrder = append(N.outputOrder, name)
	}
	N.outputs[name] = req
}

// SetInput sets the value of a declared input. File inputs take exactly one
// existing path; file sets take at least one; strings take one value.
func (N *Node) SetInput(name string, values ...string) error {
	req, ok := N.inputs[name]
	if !ok {
		return bss.NewError(fmt.Sprintf("SetInput: input %q was not declared", name))
	}
	switch req.Kind {
	case String:
		if len(values) != 1 {
			return bss.NewError(fmt.Sprintf("SetInput: input %q takes one value, got %d", name, len(values)))
		}
	case File:
		if len(values) != 1 {
			return bss.NewError(fmt.Sprintf("SetInput: input %q takes one file, got %d", name, len(values)))
		}
	case FileSet:
		if len(values) == 0 {
			return bss.NewError(fmt.Sprintf("SetInput: input %q takes at least one file", name))
		}
	}
	if req.Kind == File || req.Kind == FileSet {
		for _, v := range values {
			if _, err := os.Stat(v); err != nil {
				return bss.NewError(fmt.Sprintf("SetInput: input %q: no such file: %s", name, v))
			}
		}
	}
	req.values = values
	req.set = true
	return nil
}

// GetInput returns the (first) value of an input, falling back to its
// default.
func (N *Node) GetInput(name string) (string, error) {
	req, ok := N.inputs[name]
	if !ok {
		return "", bss.NewError(fmt.Sprintf("GetInput: input %q was not declared", name))
	}
	if !req.set {
		if req.Default != "" || req.Optional {
			return req.Default, nil
		}
		return "", bss.NewError(fmt.Sprintf("GetInput: required input %q was not set", name))
	}
	return req.values[0], nil
}

// GetInputFiles returns all the values of a file-set input.
func (N *Node) GetInputFiles(name string) ([]string, error) {
	req, ok := N.inputs[name]
	if !ok {
		return nil, bss.NewError(fmt.Sprintf("GetInputFiles: input %q was not declared", name))
	}
	if !req.set {
		return nil, bss.NewError(fmt.Sprintf("GetInputFiles: required input %q was not set", name))
	}
	return req.values, nil
}

// SetOutput records the files produced for a declared output.
func (N *Node) SetOutput(name string, files ...string) error {
	req, ok := N.outputs[name]
	if !ok {
		return bss.NewError(fmt.Sprintf("SetOutput: output %q was not declared", name))
	}
	req.values = files
	req.set = true
	return nil
}

// Validate checks that every required input was set and that every file
// recorded as an output exists on disk.
func (N *Node) Validate() error {
	for _, name := range N.inputOrder {
		req := N.inputs[name]
		if !req.set && !req.Optional && req.Default == "" {
			return bss.NewError(fmt.Sprintf("Validate: required input %q was not set", name))
		}
	}
	for _, name := range N.outputOrder {
		req := N.outputs[name]
		if !req.set {
			return bss.NewError(fmt.Sprintf("Validate: output %q was not produced", name))
		}
		for _, f := range req.values {
			if _, err := os.Stat(f); err != nil {
				return bss.NewError(fmt.Sprintf("Validate: output %q: missing file %s", name, f))
			}
		}
	}
	return nil
}

// ShowControls returns a textual description of the declared inputs, for
// interactive use.
func (N *Node) ShowControls() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n\nInputs:\n", N.description)
	for _, name := range N.inputOrder {
		req := N.inputs[name]
		def := ""
		if req.Default != "" {
			def = fmt.Sprintf(" (default: %s)", req.Default)
		}
		fmt.Fprintf(&b, "  %-10s %-8s %s%s\n", name, req.Kind, req.Help, def)
	}
	if len(N.outputOrder) > 0 {
		fmt.Fprint(&b, "Outputs:\n")
		for _, name := range N.outputOrder {
			req := N.outputs[name]
			fmt.Fprintf(&b, "  %-10s %-8s %s\n", name, req.Kind, req.Help)
		}
	}
	return b.String()
}
