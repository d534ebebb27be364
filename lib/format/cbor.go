// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package format

import (
	"errors"
	"reflect"

	"github.com/fxamacker/cbor/v2"

	"github.com/bureau-foundation/seriall/lib/pure"
)

// encMode uses Core Deterministic Encoding: sorted map keys, smallest
// integer and float encoding, no indefinite-length items.
var encMode cbor.EncMode

// decMode decodes maps into map[string]any. Documents only use string
// keys, and the CBOR default of map[interface{}]interface{} would need
// converting before tree conversion.
var decMode cbor.DecMode

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("format: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("format: CBOR decoder initialization failed: " + err.Error())
	}
}

func marshalCBOR(document pure.Document) ([]byte, error) {
	return encMode.Marshal(document.Tree())
}

func unmarshalCBOR(data []byte) (pure.Document, error) {
	if len(data) == 0 {
		return nil, errors.New("empty input")
	}
	var tree any
	if err := decMode.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	return pure.FromTree(tree)
}
