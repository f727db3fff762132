package geometry

import (
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
)

// layoutSchema bounds every field by the identifier domain. Cross-field
// rules (duplicates, references, spans) are left to Check.
const layoutSchema = `
#Ref: {
	station: int & >=1 & <=4
	ring:    int & >=1 & <=4
}

#Count: {
	#Ref
	chambers: int & >=1 & <=36
}

#Layout: {
	name: string & =~"\\S"
	csc: [...#Count]
	gem: [...#Count]
	overlaps: [...{
		csc: #Ref
		gem: #Ref
	}]
}
`

// ValidateSchema checks l against the CUE layout schema.
func ValidateSchema(l *Layout) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(layoutSchema, cue.Filename("layout.cue"))
	if err := schema.Err(); err != nil {
		return err
	}
	def := schema.LookupPath(cue.ParsePath("#Layout"))

	// Nil slices encode as null, which no list constraint accepts.
	doc := l.Clone()
	if doc.CSC == nil {
		doc.CSC = []RingCount{}
	}
	if doc.GEM == nil {
		doc.GEM = []RingCount{}
	}
	if doc.Overlaps == nil {
		doc.Overlaps = []Overlap{}
	}

	v := def.Unify(ctx.Encode(doc))
	if err := v.Validate(cue.Concrete(true)); err != nil {
		return schemaErrors(err)
	}
	return nil
}

// schemaErrors flattens CUE errors into ValidationErrors keyed by path.
func schemaErrors(err error) error {
	list := cueerrors.Errors(err)
	if len(list) == 0 {
		return ValidationErrors{{Field: "layout", Code: ErrSchema, Message: err.Error()}}
	}
	errs := make(ValidationErrors, 0, len(list))
	for _, e := range list {
		field := strings.Join(e.Path(), ".")
		if field == "" {
			field = "layout"
		}
		errs = append(errs, ValidationError{
			Field:   field,
			Code:    ErrSchema,
			Message: e.Error(),
		})
	}
	return errs
}
