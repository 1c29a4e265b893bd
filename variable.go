package polytrig

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// VarType is an opaque variable identifier. It encodes a short name over a
// fixed alphabet together with a one-based index, so that indexed families
// like x1, x2, ... map to distinct ids. The low bit is reserved (msspoly
// compatibility; it historically flagged trigonometric identities).
type VarType uint64

// nameTable is the immutable configuration for the variable naming scheme.
type nameTable struct {
	alphabet    string
	nameLength  int
	maxNamePart VarType // radix^nameLength, radix = len(alphabet)+1
}

var varNames = nameTable{
	alphabet:    "@#_.abcdefghijklmnopqrstuvwxyz",
	nameLength:  4,
	maxNamePart: 923521, // 31^4
}

func (t nameTable) radix() VarType { return VarType(len(t.alphabet) + 1) }

func (t nameTable) maxIndex() uint64 {
	return math.MaxUint64 / 2 / uint64(t.maxNamePart)
}

// IsValidVariableName reports whether name is 1-4 characters drawn from the
// supported alphabet.
func IsValidVariableName(name string) bool {
	if len(name) < 1 || len(name) > varNames.nameLength {
		return false
	}
	for i := 0; i < len(name); i++ {
		if strings.IndexByte(varNames.alphabet, name[i]) < 0 {
			return false
		}
	}
	return true
}

// VariableNameToID encodes a name and a one-based index into a VarType.
// The encoding is bijective with DecodeVariableID over the supported name
// space.
func VariableNameToID(name string, index uint64) (VarType, error) {
	if !IsValidVariableName(name) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	radix := varNames.radix()
	multiplier := VarType(1)
	var namePart VarType
	for i := len(name) - 1; i >= 0; i-- {
		offset := VarType(strings.IndexByte(varNames.alphabet, name[i]))
		namePart += (offset + 1) * multiplier
		multiplier *= radix
	}
	if namePart > varNames.maxNamePart {
		return 0, fmt.Errorf("%w: name %q exceeds max name part", ErrIDOverflow, name)
	}
	if index < 1 {
		return 0, fmt.Errorf("%w: index must be >= 1", ErrIDOverflow)
	}
	if index > varNames.maxIndex() {
		return 0, fmt.Errorf("%w: index %d exceeds max %d", ErrIDOverflow, index, varNames.maxIndex())
	}
	return 2 * (namePart + varNames.maxNamePart*VarType(index-1)), nil
}

// DecodeVariableID recovers the base name and one-based index encoded in id.
func DecodeVariableID(id VarType) (name string, index uint64) {
	radix := varNames.radix()
	namePart := (id / 2) % varNames.maxNamePart
	index = uint64(id/2/varNames.maxNamePart) + 1

	multiplier := VarType(1)
	for i := 0; i < varNames.nameLength-1; i++ {
		multiplier *= radix
	}
	var sb strings.Builder
	for i := 0; i < varNames.nameLength; i++ {
		nameInd := (namePart / multiplier) % radix
		if nameInd > 0 {
			sb.WriteByte(varNames.alphabet[nameInd-1])
		}
		multiplier /= radix
	}
	name = sb.String()
	if name == "" {
		name = string(varNames.alphabet[0])
	}
	return name, index
}

// IDToVariableName renders id in its display form, base name followed by
// the index: encode("x", 1) renders as "x1".
func IDToVariableName(id VarType) string {
	name, index := DecodeVariableID(id)
	return name + strconv.FormatUint(index, 10)
}

// ParseVariable parses a display-form variable name ("x1", "th12", or a
// bare "x" meaning index 1) back into its id.
func ParseVariable(s string) (VarType, error) {
	split := len(s)
	for split > 0 && s[split-1] >= '0' && s[split-1] <= '9' {
		split--
	}
	name := s[:split]
	index := uint64(1)
	if split < len(s) {
		var err error
		index, err = strconv.ParseUint(s[split:], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidName, s)
		}
	}
	return VariableNameToID(name, index)
}
