package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/docuvault/field-extractor/constants"
	"github.com/docuvault/field-extractor/db/ent/schema/utils"

	"github.com/google/uuid"
)

type DocumentField struct{ ent.Schema }

func (DocumentField) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "document_fields"},
	}
}

func (DocumentField) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// explicit FKs so we can define a composite unique index
		field.UUID("document_id", uuid.UUID{}),
		field.UUID("job_id", uuid.UUID{}).Optional().Nillable(),
		field.String("name").NotEmpty(),
		field.String("value").NotEmpty(),
		field.String("source").
			Validate(utils.EnumValidator(constants.FieldSources...)),
		field.Time("extracted_at").Default(time.Now),
	}
}

func (DocumentField) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("document", Document.Type).
			Ref("fields").
			Field("document_id").
			Unique().
			Required(),
	}
}

func (DocumentField) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "name").Unique(),
		index.Fields("job_id"),
	}
}
