package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

// CartItem is one entry in a user's cart. Email identifies the owner; the
// remaining fields are whatever the client put in the cart.
type CartItem struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Email  string             `bson:"email"`
	Fields Fields             `bson:",inline"`
}

func (c CartItem) MarshalJSON() ([]byte, error) {
	typed := idKey(c.ID)
	typed["email"] = c.Email
	return marshalDocument(c.Fields, typed)
}

func (c *CartItem) UnmarshalJSON(data []byte) error {
	fields, err := unmarshalDocument(data)
	if err != nil {
		return err
	}
	email, err := takeString(fields, "email")
	if err != nil {
		return err
	}
	c.ID = takeID(fields)
	c.Email = email
	c.Fields = fields
	return nil
}
