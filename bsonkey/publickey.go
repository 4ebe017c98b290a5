package bsonkey

import (
	"fmt"
	"math/big"

	"github.com/keep-network/paillier-counter"
	"gopkg.in/mgo.v2/bson"
)

// PublicKey is a BSON-serializable mirror of paillier.PublicKey.
type PublicKey paillier.PublicKey

// SerializePublicKey serializes pub to BSON.
func SerializePublicKey(pub *paillier.PublicKey) ([]byte, error) {
	if pub == nil {
		return nil, fmt.Errorf("public key must not be nil")
	}
	wrapped := PublicKey(*pub)
	return bson.Marshal(&wrapped)
}

// DeserializePublicKey deserializes BSON data into a paillier.PublicKey.
func DeserializePublicKey(data []byte) (*paillier.PublicKey, error) {
	wrapped := new(PublicKey)
	if err := bson.Unmarshal(data, wrapped); err != nil {
		return nil, err
	}
	original := paillier.PublicKey(*wrapped)
	return &original, nil
}

type dbPublicKey struct {
	N        string `bson:",omitempty"`
	G        string `bson:",omitempty"`
	NSquared string `bson:",omitempty"`
}

// GetBSON implements bson.Getter.
func (pub *PublicKey) GetBSON() (interface{}, error) {
	return &dbPublicKey{
		N:        fmt.Sprintf("%X", pub.N),
		G:        fmt.Sprintf("%X", pub.G),
		NSquared: fmt.Sprintf("%X", pub.NSquared),
	}, nil
}

// SetBSON implements bson.Setter.
func (pub *PublicKey) SetBSON(raw bson.Raw) error {
	db := new(dbPublicKey)
	if err := raw.Unmarshal(db); err != nil {
		return err
	}

	var err error
	if pub.N, err = fromHex(db.N); err != nil {
		return err
	}
	if pub.G, err = fromHex(db.G); err != nil {
		return err
	}
	if pub.NSquared, err = fromHex(db.NSquared); err != nil {
		return err
	}
	return nil
}

func fromHex(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		return nil, fmt.Errorf("%q is not a valid hexadecimal integer", s)
	}
	return n, nil
}
