// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownObjectType is returned by [DecodeObject] when the "type" tag of a
// payload is not one of item, collection or community.
var ErrUnknownObjectType = errors.New("unknown repository object type")

// ObjectType is the "type" tag DSpace puts on every REST resource.
type ObjectType string

// Object types a handle can resolve to.
const (
	TypeItem       ObjectType = "item"
	TypeCollection ObjectType = "collection"
	TypeCommunity  ObjectType = "community"
)

// DSpaceObject holds the fields shared by items, collections and communities.
type DSpaceObject struct {
	ID       string      `json:"id,omitempty"`
	UUID     string      `json:"uuid"`
	Name     string      `json:"name"`
	Handle   string      `json:"handle"`
	Metadata MetadataMap `json:"metadata"`
	Type     ObjectType  `json:"type"`
}

// Base returns the shared part of the object.
func (o DSpaceObject) Base() DSpaceObject {
	return o
}

// Object is the tagged union a handle resolves to. The concrete type is one of
// [Item], [Collection] or [Community]; callers are expected to use a type
// switch with a default arm.
type Object interface {
	Base() DSpaceObject
	isObject()
}

// Item is an archived (or workspace) item.
type Item struct {
	DSpaceObject
	InArchive    bool    `json:"inArchive"`
	Discoverable bool    `json:"discoverable"`
	Withdrawn    bool    `json:"withdrawn"`
	LastModified string  `json:"lastModified,omitempty"`
	EntityType   *string `json:"entityType"`
}

// Collection groups items; every item has exactly one owning collection.
type Collection struct {
	DSpaceObject
}

// Community groups collections and sub-communities.
type Community struct {
	DSpaceObject
}

func (Item) isObject()       {}
func (Collection) isObject() {}
func (Community) isObject()  {}

// DecodeObject builds the variant matching the "type" tag of data.
func DecodeObject(data []byte) (Object, error) {
	var tag struct {
		Type ObjectType `json:"type"`
	}
	if err := json.Unmarshal(data, &tag); err != nil {
		return nil, fmt.Errorf("decode object type: %w", err)
	}

	switch tag.Type {
	case TypeItem:
		var item Item
		if err := json.Unmarshal(data, &item); err != nil {
			return nil, fmt.Errorf("decode item: %w", err)
		}
		return item, nil
	case TypeCollection:
		var collection Collection
		if err := json.Unmarshal(data, &collection); err != nil {
			return nil, fmt.Errorf("decode collection: %w", err)
		}
		return collection, nil
	case TypeCommunity:
		var community Community
		if err := json.Unmarshal(data, &community); err != nil {
			return nil, fmt.Errorf("decode community: %w", err)
		}
		return community, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownObjectType, tag.Type)
	}
}
