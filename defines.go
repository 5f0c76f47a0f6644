package argot

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Name prefix constants used when classifying registered names.
const (
	LongNamePrefix  = "--"
	ShortNamePrefix = "-"
)

// Default spellings for the automatically registered help option.
const (
	DefaultHelpShortName = "-h"
	DefaultHelpLongName  = "--help"
)

// DefaultFlagValue is the token assigned to a flag target when the
// flag is present on the command line and no FlagValue was configured.
const DefaultFlagValue = "1"

// Struct tag keys recognized by AddStruct.
const (
	ArgStructTag     = "arg"
	HelpStructTag    = "help"
	DefaultStructTag = "default"
)

// reflect.TypeOf constants for type checks
var (
	TimeType      = reflect.TypeOf(time.Time{})
	DurationType  = reflect.TypeOf(time.Duration(0))
	UUIDType      = reflect.TypeOf(uuid.UUID{})
	ByteSliceType = reflect.TypeOf([]byte{})
)
