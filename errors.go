/*
 * errors.go, part of BioSimSpace.
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

package bss

import "strings"

// Error is the interface implemented by the errors of this library. The
// Decorate method allows adding information to an error as it is passed up
// the calling stack, without changing its type or wrapping it in another
// error. Each element of the decoration slice should be the name of a
// function in the stack, optionally followed by extra information, in the
// format "FunctionName: extra info".
type Error interface {
	Error() string
	Decorate(string) []string
}

// CError is the concrete error type used by the bss package. It contains a
// message and a decoration trace.
type CError struct {
	msg  string
	deco []string
}

func (err *CError) Error() string {
	if len(err.deco) == 0 {
		return err.msg
	}
	return strings.Join(err.deco, "/") + ": " + err.msg
}

// Decorate adds dec to the decoration trace, unless dec is empty, and
// returns the current trace.
func (err *CError) Decorate(dec string) []string {
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// NewError returns a CError with the given message.
func NewError(msg string) *CError {
	return &CError{msg: msg}
}

// errDecorate decorates err with the caller name if err implements the
// Error interface of this library, and wraps it in a CError otherwise.
func errDecorate(err error, caller string) error {
	err2, ok := err.(Error)
	if ok {
		err2.Decorate(caller)
		return err2
	}
	return &CError{msg: err.Error(), deco: []string{caller}}
}
