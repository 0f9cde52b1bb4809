package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

type Extraction struct{ ent.Schema }

func (Extraction) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "ocr_extractions"},
	}
}

func (Extraction) Fields() []ent.Field {
	return []ent.Field{
		// id is the implicit auto-increment primary key.
		field.String("filename").NotEmpty().MaxLen(255),
		field.String("document_type").NotEmpty().MaxLen(50),
		field.String("name").Optional().Nillable().MaxLen(255),
		field.String("email").Optional().Nillable().MaxLen(255),
		field.String("phone").Optional().Nillable().MaxLen(50),
		field.String("aadhaar").Optional().Nillable().MaxLen(20),
		field.String("pan").Optional().Nillable().MaxLen(20),
		field.Time("dob").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Text("address").Optional().Nillable(),
		field.String("state").Optional().Nillable().MaxLen(100),
		field.String("country").Optional().Nillable().MaxLen(100),
		field.Text("raw_text"),
		field.Float32("confidence_score"),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Extraction) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_type"),
		index.Fields("created_at"),
	}
}
