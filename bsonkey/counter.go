package bsonkey

import (
	"fmt"

	"github.com/keep-network/paillier-counter"
	"gopkg.in/mgo.v2/bson"
)

// Counter is a BSON-serializable mirror of paillier.Counter.
type Counter paillier.Counter

// SerializeCounter serializes c to BSON.
func SerializeCounter(c *paillier.Counter) ([]byte, error) {
	if c == nil {
		return nil, fmt.Errorf("counter must not be nil")
	}
	wrapped := Counter(*c)
	return bson.Marshal(&wrapped)
}

// DeserializeCounter deserializes BSON data into a paillier.Counter.
func DeserializeCounter(data []byte) (*paillier.Counter, error) {
	wrapped := new(Counter)
	if err := bson.Unmarshal(data, wrapped); err != nil {
		return nil, err
	}
	original := paillier.Counter(*wrapped)
	return &original, nil
}

type dbCounter struct {
	Version     string `bson:",omitempty"`
	C           string `bson:",omitempty"`
	LastUpdated int64
}

// GetBSON implements bson.Getter.
func (c *Counter) GetBSON() (interface{}, error) {
	return &dbCounter{
		Version:     c.Version,
		C:           fmt.Sprintf("%X", c.C),
		LastUpdated: c.LastUpdated,
	}, nil
}

// SetBSON implements bson.Setter.
func (c *Counter) SetBSON(raw bson.Raw) error {
	db := new(dbCounter)
	if err := raw.Unmarshal(db); err != nil {
		return err
	}

	n, err := fromHex(db.C)
	if err != nil {
		return err
	}
	c.Version = db.Version
	c.C = n
	c.LastUpdated = db.LastUpdated
	return nil
}
