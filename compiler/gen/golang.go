package gen

import (
	"path"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/filterql/schema/field"
)

// Import paths referenced by generated code.
const (
	rootPkg  = "github.com/syssam/filterql"
	sqlPkg   = rootPkg + "/dialect/sql"
	fieldPkg = rootPkg + "/schema/field"
	uuidPkg  = "github.com/google/uuid"
)

// predicatePkg returns the import path of the generated predicate
// package.
func (g *Generator) predicatePkg() string {
	return path.Join(g.cfg.Package, "predicate")
}

// genPredicateFile builds the shared predicate package: one named
// func(*sql.Selector) type per model, instantiating the typed field
// helpers of dialect/sql.
func (g *Generator) genPredicateFile() *jen.File {
	f := jen.NewFilePathName(g.predicatePkg(), "predicate")
	f.HeaderComment(g.cfg.Header)
	for _, t := range g.types {
		f.Commentf("%s is the predicate type of the %s model.", t.TypeName(), t.Name)
		f.Type().Id(t.TypeName()).Func().Params(jen.Op("*").Qual(sqlPkg, "Selector"))
	}
	return f
}

// genModelFile builds one model's Go package: column constants, the
// spec table, the compiled model, enum types and typed predicate
// helpers.
func (g *Generator) genModelFile(t *Type) *jen.File {
	f := jen.NewFilePathName(path.Join(g.cfg.Package, t.PackageDir()), t.PackageDir())
	f.HeaderComment(g.cfg.Header)

	consts := []jen.Code{
		jen.Comment("Label holds the base name of the model."),
		jen.Id("Label").Op("=").Lit(t.Name),
	}
	for _, fld := range t.Fields() {
		consts = append(consts,
			jen.Commentf("%s holds the column name of the %s field.", fld.Constant(), fld.Name()),
			jen.Id(fld.Constant()).Op("=").Lit(fld.Name()),
		)
	}
	f.Const().Defs(consts...)

	f.Comment("Columns holds the column names of all declared fields.")
	f.Var().Id("Columns").Op("=").Index().String().ValuesFunc(func(vg *jen.Group) {
		for _, fld := range t.Fields() {
			vg.Line().Id(fld.Constant())
		}
		vg.Line()
	})

	f.Commentf("Fields returns the declared field specs of the %s model.", t.Name)
	f.Func().Id("Fields").Params().Index().Qual(fieldPkg, "Spec").Block(
		jen.Return(jen.Index().Qual(fieldPkg, "Spec").ValuesFunc(func(vg *jen.Group) {
			for _, fld := range t.Fields() {
				vg.Line().Add(specExpr(fld))
			}
			vg.Line()
		})),
	)

	f.Commentf("Model is the compiled %s model shared by the generated helpers.", t.Name)
	f.Var().Id("Model").Op("=").Qual(rootPkg, "MustModel").Call(jen.Id("Label"), jen.Id("Fields").Call())

	f.Comment("Filter applies a filter map to a selector over the model's fields.")
	f.Func().Id("Filter").Params(
		jen.Id("s").Op("*").Qual(sqlPkg, "Selector"),
		jen.Id("filter").Map(jen.String()).Any(),
	).Params(jen.Op("*").Qual(sqlPkg, "Selector"), jen.Error()).Block(
		jen.Return(jen.Id("Model").Dot("Filter").Call(jen.Id("s"), jen.Id("filter"))),
	)

	seen := make(map[string]bool)
	for _, fld := range t.Fields() {
		if !fld.IsEnum() || seen[fld.EnumType()] {
			continue
		}
		seen[fld.EnumType()] = true
		genEnum(f, fld)
	}

	var defs []jen.Code
	for _, fld := range t.Fields() {
		expr := g.fieldVar(fld)
		if expr == nil {
			continue
		}
		defs = append(defs,
			jen.Commentf("%s provides typed predicates over the %s column.", fld.PascalName(), fld.Name()),
			jen.Id(fld.PascalName()).Op("=").Add(expr),
		)
	}
	if len(defs) > 0 {
		f.Var().Defs(defs...)
	}
	return f
}

// genEnum emits the enum type, its value constants and the String and
// Valid methods.
func genEnum(f *jen.File, fld *Field) {
	name := fld.EnumType()
	f.Commentf("%s is the generated enum type of the %s field.", name, fld.Name())
	f.Type().Id(name).String()

	consts := make([]jen.Code, 0, len(fld.Spec.EnumValues))
	caseVals := make([]jen.Code, 0, len(fld.Spec.EnumValues))
	for _, v := range fld.Spec.EnumValues {
		consts = append(consts, jen.Id(fld.EnumConst(v)).Id(name).Op("=").Lit(v))
		caseVals = append(caseVals, jen.Id(fld.EnumConst(v)))
	}
	f.Commentf("%s values.", name)
	f.Const().Defs(consts...)

	f.Comment("String implements fmt.Stringer.")
	f.Func().Params(jen.Id("e").Id(name)).Id("String").Params().String().Block(
		jen.Return(jen.String().Call(jen.Id("e"))),
	)

	f.Comment("Valid reports if e is one of the declared values.")
	f.Func().Params(jen.Id("e").Id(name)).Id("Valid").Params().Bool().Block(
		jen.Switch(jen.Id("e")).Block(
			jen.Case(caseVals...).Block(jen.Return(jen.True())),
		),
		jen.Return(jen.False()),
	)
}

// specExpr renders the field constructor expression of one spec, e.g.
// field.Enum("status").Values("active", "archived").
func specExpr(f *Field) jen.Code {
	expr := jen.Qual(fieldPkg, ctorName(f.Spec.Type)).Call(jen.Lit(f.Name()))
	if f.IsEnum() {
		vals := make([]jen.Code, len(f.Spec.EnumValues))
		for i, v := range f.Spec.EnumValues {
			vals[i] = jen.Lit(v)
		}
		expr = expr.Dot("Values").Call(vals...)
		if f.Spec.EnumName != "" {
			expr = expr.Dot("Named").Call(jen.Lit(f.Spec.EnumName))
		}
	}
	return expr
}

// ctorName maps a type tag to its constructor in schema/field.
func ctorName(t field.Type) string {
	switch t {
	case field.TypeID:
		return "ID"
	case field.TypeInt:
		return "Int"
	case field.TypeFloat:
		return "Float"
	case field.TypeBool:
		return "Bool"
	case field.TypeDate:
		return "Date"
	case field.TypeDateTime:
		return "DateTime"
	case field.TypeUUID:
		return "UUID"
	case field.TypeJSON:
		return "JSON"
	case field.TypeEnum:
		return "Enum"
	default:
		return "String"
	}
}

// fieldVar renders the typed predicate helper of one field, or nil for
// opaque fields that expose no operators.
func (g *Generator) fieldVar(fld *Field) jen.Code {
	pred := jen.Qual(g.predicatePkg(), fld.typ.TypeName())
	c := jen.Id(fld.Constant())
	switch fld.Spec.Type {
	case field.TypeID:
		return jen.Qual(sqlPkg, "Int64Field").Index(pred).Call(c)
	case field.TypeInt:
		return jen.Qual(sqlPkg, "IntField").Index(pred).Call(c)
	case field.TypeFloat:
		return jen.Qual(sqlPkg, "Float64Field").Index(pred).Call(c)
	case field.TypeString:
		return jen.Qual(sqlPkg, "StringField").Index(pred).Call(c)
	case field.TypeBool:
		return jen.Qual(sqlPkg, "BoolField").Index(pred).Call(c)
	case field.TypeDate, field.TypeDateTime:
		return jen.Qual(sqlPkg, "TimeField").Types(pred, jen.Qual("time", "Time")).Call(c)
	case field.TypeUUID:
		return jen.Qual(sqlPkg, "UUIDField").Types(pred, jen.Qual(uuidPkg, "UUID")).Call(c)
	case field.TypeEnum:
		return jen.Qual(sqlPkg, "EnumField").Types(pred, jen.Id(fld.EnumType())).Call(c)
	default:
		return nil
	}
}
