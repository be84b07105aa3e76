package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// MenuItem is a dish offered by the restaurant. Beyond its identifier the
// document is stored and served exactly as the admin submitted it.
type MenuItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Fields Fields             `bson:",inline"`
}

func (m MenuItem) MarshalJSON() ([]byte, error) {
	return marshalDocument(m.Fields, idKey(m.ID))
}

func (m *MenuItem) UnmarshalJSON(data []byte) error {
	fields, err := unmarshalDocument(data)
	if err != nil {
		return err
	}
	m.ID = takeID(fields)
	m.Fields = fields
	return nil
}

// Review is a customer testimonial. It is read-only here.
type Review struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Fields Fields             `bson:",inline"`
}

func (r Review) MarshalJSON() ([]byte, error) {
	return marshalDocument(r.Fields, idKey(r.ID))
}

func (r *Review) UnmarshalJSON(data []byte) error {
	fields, err := unmarshalDocument(data)
	if err != nil {
		return err
	}
	r.ID = takeID(fields)
	r.Fields = fields
	return nil
}
