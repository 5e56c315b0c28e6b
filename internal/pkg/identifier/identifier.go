// Package identifier gera e valida os identificadores opacos das entidades.
// Todos os backends usam o formato hexadecimal de 24 caracteres do ObjectID
// do MongoDB, de modo que um ID é portátil entre eles.
package identifier

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	apperror "petshop/internal/errors"
)

// New gera um novo identificador.
func New() string {
	return bson.NewObjectID().Hex()
}

// Valid informa se id está bem formado.
func Valid(id string) bool {
	_, err := bson.ObjectIDFromHex(id)
	return err == nil
}

// Require devolve InvalidIdentifierError, nomeando o campo, quando id está malformado.
func Require(field, id string) error {
	if !Valid(id) {
		return apperror.NewInvalidIdentifierError(field, id)
	}
	return nil
}
