package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/filterql/compiler/gen"
	"github.com/syssam/filterql/schema/field"
)

func userSpecs() []field.Spec {
	return []field.Spec{
		field.ID("id"),
		field.Int("age"),
		field.String("email"),
		field.Bool("active"),
		field.DateTime("created_at"),
		field.Date("birthday"),
		field.UUID("uid"),
		field.JSON("attrs"),
		field.Enum("status").Values("active", "archived"),
	}
}

func TestNewType(t *testing.T) {
	t.Parallel()
	typ, err := gen.NewType("user", userSpecs())
	require.NoError(t, err)

	assert.Equal(t, "user", typ.Name)
	assert.False(t, typ.Reuse)
	require.NotNil(t, typ.Model())
	assert.Equal(t, "user", typ.Model().Name())
	assert.Len(t, typ.Fields(), 9)
}

func TestNewTypeErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		model   string
		specs   []field.Spec
		message string
	}{
		{
			name:    "EmptyName",
			model:   "",
			specs:   userSpecs(),
			message: "model name required",
		},
		{
			name:    "IllegalName",
			model:   "2fast",
			specs:   userSpecs(),
			message: "name does not map to a legal GraphQL identifier",
		},
		{
			name:    "NoFields",
			model:   "user",
			specs:   nil,
			message: "model declares no fields",
		},
		{
			name:    "InvalidSpec",
			model:   "user",
			specs:   []field.Spec{field.Enum("status")},
			message: "invalid field spec",
		},
		{
			name:    "DuplicateField",
			model:   "user",
			specs:   []field.Spec{field.String("name"), field.String("name")},
			message: "invalid model",
		},
		{
			name:    "ReservedFieldName",
			model:   "user",
			specs:   []field.Spec{field.String("label")},
			message: "field name collides with a generated declaration",
		},
		{
			name:  "EnumTypeCollision",
			model: "user",
			specs: []field.Spec{
				field.String("user_status"),
				field.Enum("status").Values("active"),
			},
			message: "enum type name collides with a generated field helper",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := gen.NewType(tt.model, tt.specs)
			require.Error(t, err)
			assert.True(t, gen.IsSchemaError(err))
			assert.ErrorIs(t, err, gen.ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestTypeNaming(t *testing.T) {
	t.Parallel()
	tests := []struct {
		model      string
		typeName   string
		fieldsType string
		listField  string
		packageDir string
	}{
		{"user", "User", "UserFields", "users", "user"},
		{"user_profile", "UserProfile", "UserProfileFields", "userProfiles", "userprofile"},
		{"category", "Category", "CategoryFields", "categories", "category"},
		{"order_item", "OrderItem", "OrderItemFields", "orderItems", "orderitem"},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			t.Parallel()
			typ, err := gen.NewType(tt.model, []field.Spec{field.ID("id")})
			require.NoError(t, err)
			assert.Equal(t, tt.typeName, typ.TypeName())
			assert.Equal(t, tt.fieldsType, typ.FieldsType())
			assert.Equal(t, tt.typeName+"Results", typ.ResultsType())
			assert.Equal(t, tt.typeName+"Filter", typ.FilterInput())
			assert.Equal(t, tt.listField, typ.ListField())
			assert.Equal(t, tt.packageDir, typ.PackageDir())
		})
	}
}

func TestTypeElemType(t *testing.T) {
	t.Parallel()
	typ, err := gen.NewType("user", []field.Spec{field.ID("id")})
	require.NoError(t, err)
	assert.Equal(t, "UserFields", typ.ElemType())

	typ.Reuse = true
	assert.Equal(t, "User", typ.ElemType())
}

func TestMustType(t *testing.T) {
	t.Parallel()

	t.Run("Valid", func(t *testing.T) {
		t.Parallel()
		typ := gen.MustType("user", userSpecs())
		assert.Equal(t, "User", typ.TypeName())
	})

	t.Run("Panics", func(t *testing.T) {
		t.Parallel()
		assert.Panics(t, func() {
			gen.MustType("", nil)
		})
	})
}

type catalogDef struct{}

func (catalogDef) Name() string { return "product" }

func (catalogDef) Fields() []field.Spec {
	return []field.Spec{
		field.ID("id"),
		field.String("sku"),
		field.Float("price"),
	}
}

func TestTypeOf(t *testing.T) {
	t.Parallel()
	typ, err := gen.TypeOf(catalogDef{})
	require.NoError(t, err)
	assert.Equal(t, "Product", typ.TypeName())
	assert.Len(t, typ.Fields(), 3)
}

func TestFieldNaming(t *testing.T) {
	t.Parallel()
	typ, err := gen.NewType("user", userSpecs())
	require.NoError(t, err)

	byName := make(map[string]*gen.Field, len(typ.Fields()))
	for _, f := range typ.Fields() {
		byName[f.Name()] = f
	}

	id := byName["id"]
	assert.Equal(t, field.TypeID, id.Type())
	assert.Equal(t, "ID", id.PascalName())
	assert.Equal(t, "FieldID", id.Constant())

	created := byName["created_at"]
	assert.Equal(t, "CreatedAt", created.PascalName())
	assert.Equal(t, "FieldCreatedAt", created.Constant())

	// Operator surface per type tag.
	assert.Equal(t, 9, byName["age"].Ops().Len())
	assert.Equal(t, 5, byName["active"].Ops().Len())
	assert.Equal(t, 0, byName["attrs"].Ops().Len())

	status := byName["status"]
	assert.True(t, status.IsEnum())
	assert.False(t, byName["email"].IsEnum())
	assert.Equal(t, "UserStatus", status.EnumType())
	assert.Equal(t, "UserStatusActive", status.EnumConst("active"))
	assert.Equal(t, "UserStatusArchived", status.EnumConst("archived"))
}

func TestFieldEnumNamed(t *testing.T) {
	t.Parallel()
	typ, err := gen.NewType("user", []field.Spec{
		field.Enum("role").Values("admin", "member").Named("access_role"),
	})
	require.NoError(t, err)

	role := typ.Fields()[0]
	assert.Equal(t, "AccessRole", role.EnumType())
	assert.Equal(t, "AccessRoleAdmin", role.EnumConst("admin"))
}
