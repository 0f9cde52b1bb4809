// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// OcrExtractionsColumns holds the columns for the "ocr_extractions" table.
	OcrExtractionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "filename", Type: field.TypeString, Size: 255},
		{Name: "document_type", Type: field.TypeString, Size: 50},
		{Name: "name", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "email", Type: field.TypeString, Nullable: true, Size: 255},
		{Name: "phone", Type: field.TypeString, Nullable: true, Size: 50},
		{Name: "aadhaar", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "pan", Type: field.TypeString, Nullable: true, Size: 20},
		{Name: "dob", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "address", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "state", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "country", Type: field.TypeString, Nullable: true, Size: 100},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647},
		{Name: "confidence_score", Type: field.TypeFloat32},
		{Name: "created_at", Type: field.TypeTime},
	}
	// OcrExtractionsTable holds the schema information for the "ocr_extractions" table.
	OcrExtractionsTable = &schema.Table{
		Name:       "ocr_extractions",
		Columns:    OcrExtractionsColumns,
		PrimaryKey: []*schema.Column{OcrExtractionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "extraction_document_type",
				Unique:  false,
				Columns: []*schema.Column{OcrExtractionsColumns[2]},
			},
			{
				Name:    "extraction_created_at",
				Unique:  false,
				Columns: []*schema.Column{OcrExtractionsColumns[14]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		OcrExtractionsTable,
	}
)

func init() {
	OcrExtractionsTable.Annotation = &entsql.Annotation{
		Table: "ocr_extractions",
	}
}
