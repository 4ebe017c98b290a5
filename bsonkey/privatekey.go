package bsonkey

import (
	"fmt"

	"github.com/keep-network/paillier-counter"
	"gopkg.in/mgo.v2/bson"
)

// PrivateKey is a BSON-serializable mirror of paillier.PrivateKey.
type PrivateKey paillier.PrivateKey

// SerializePrivateKey serializes priv to BSON.
func SerializePrivateKey(priv *paillier.PrivateKey) ([]byte, error) {
	if priv == nil {
		return nil, fmt.Errorf("private key must not be nil")
	}
	wrapped := PrivateKey(*priv)
	return bson.Marshal(&wrapped)
}

// DeserializePrivateKey deserializes BSON data into a paillier.PrivateKey.
func DeserializePrivateKey(data []byte) (*paillier.PrivateKey, error) {
	wrapped := new(PrivateKey)
	if err := bson.Unmarshal(data, wrapped); err != nil {
		return nil, err
	}
	original := paillier.PrivateKey(*wrapped)
	return &original, nil
}

type dbPrivateKey struct {
	P           string `bson:",omitempty"`
	Q           string `bson:",omitempty"`
	PSquared    string `bson:",omitempty"`
	QSquared    string `bson:",omitempty"`
	PInvMod2ToW string `bson:",omitempty"`
	QInvMod2ToW string `bson:",omitempty"`
	HSubP       string `bson:",omitempty"`
	HSubQ       string `bson:",omitempty"`
	QInv        string `bson:",omitempty"`
}

// GetBSON implements bson.Getter.
func (priv *PrivateKey) GetBSON() (interface{}, error) {
	return &dbPrivateKey{
		P:           fmt.Sprintf("%X", priv.P),
		Q:           fmt.Sprintf("%X", priv.Q),
		PSquared:    fmt.Sprintf("%X", priv.PSquared),
		QSquared:    fmt.Sprintf("%X", priv.QSquared),
		PInvMod2ToW: fmt.Sprintf("%X", priv.PInvMod2ToW),
		QInvMod2ToW: fmt.Sprintf("%X", priv.QInvMod2ToW),
		HSubP:       fmt.Sprintf("%X", priv.HSubP),
		HSubQ:       fmt.Sprintf("%X", priv.HSubQ),
		QInv:        fmt.Sprintf("%X", priv.QInv),
	}, nil
}

// SetBSON implements bson.Setter.
func (priv *PrivateKey) SetBSON(raw bson.Raw) error {
	db := new(dbPrivateKey)
	if err := raw.Unmarshal(db); err != nil {
		return err
	}

	var err error
	if priv.P, err = fromHex(db.P); err != nil {
		return err
	}
	if priv.Q, err = fromHex(db.Q); err != nil {
		return err
	}
	if priv.PSquared, err = fromHex(db.PSquared); err != nil {
		return err
	}
	if priv.QSquared, err = fromHex(db.QSquared); err != nil {
		return err
	}
	if priv.PInvMod2ToW, err = fromHex(db.PInvMod2ToW); err != nil {
		return err
	}
	if priv.QInvMod2ToW, err = fromHex(db.QInvMod2ToW); err != nil {
		return err
	}
	if priv.HSubP, err = fromHex(db.HSubP); err != nil {
		return err
	}
	if priv.HSubQ, err = fromHex(db.HSubQ); err != nil {
		return err
	}
	if priv.QInv, err = fromHex(db.QInv); err != nil {
		return err
	}
	return nil
}
