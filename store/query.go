// Copyright 2026 Northern.tech AS
//
//    Licensed under the Apache License, Version 2.0 (the "License");
//    you may not use this file except in compliance with the License.
//    You may obtain a copy of the License at
//
//        http://www.apache.org/licenses/LICENSE-2.0
//
//    Unless required by applicable law or agreed to in writing, software
//    distributed under the License is distributed on an "AS IS" BASIS,
//    WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
//    See the License for the specific language governing permissions and
//    limitations under the License.
package store

import "sort"

type ComparisonOperator int

const (
	// OpNone marks a condition whose token is not a recognized
	// comparison operator; the token is passed through verbatim.
	OpNone ComparisonOperator = 0
	Gt     ComparisonOperator = 1 << iota
	Gte
	Lt
	Lte
)

const (
	FieldCreatedAt = "createdAt"
	FieldVersion   = "__v"
)

var operatorTokens = map[string]ComparisonOperator{
	"gt":  Gt,
	"gte": Gte,
	"lt":  Lt,
	"lte": Lte,
}

// OperatorFromToken returns the comparison operator for a whole-word
// token, or OpNone if the token is not one of gt, gte, lt, lte.
func OperatorFromToken(token string) ComparisonOperator {
	return operatorTokens[token]
}

func (op ComparisonOperator) String() string {
	switch op {
	case Gt:
		return "gt"
	case Gte:
		return "gte"
	case Lt:
		return "lt"
	case Lte:
		return "lte"
	}
	return ""
}

// Condition is a single operator predicate on a field, e.g. price[gte]=500.
type Condition struct {
	Operator ComparisonOperator
	Token    string
	Value    string
}

// Native returns the storage engine form of the condition key: "$gte"
// for recognized operators, the raw token otherwise.
func (c Condition) Native() string {
	if c.Operator != OpNone {
		return "$" + c.Operator.String()
	}
	return c.Token
}

type FieldFilter struct {
	// Values holds literal equality values; more than one means
	// "any of".
	Values     []string
	Conditions []Condition
}

// FilterSpec maps a field name to its predicates. An empty spec
// matches every document.
type FilterSpec map[string]FieldFilter

// Fields returns the filtered field names in lexical order.
func (f FilterSpec) Fields() []string {
	fields := make([]string, 0, len(f))
	for name := range f {
		fields = append(fields, name)
	}
	sort.Strings(fields)
	return fields
}

// Document renders the spec as an engine-neutral mapping:
// {"price": {"$gte": "500"}, "difficulty": "easy"}.
func (f FilterSpec) Document() map[string]interface{} {
	doc := make(map[string]interface{}, len(f))
	for name, ff := range f {
		if len(ff.Conditions) > 0 {
			ops := make(map[string]interface{}, len(ff.Conditions)+1)
			for _, c := range ff.Conditions {
				ops[c.Native()] = c.Value
			}
			switch len(ff.Values) {
			case 0:
			case 1:
				ops["$eq"] = ff.Values[0]
			default:
				ops["$in"] = ff.Values
			}
			doc[name] = ops
			continue
		}
		switch len(ff.Values) {
		case 0:
			doc[name] = ""
		case 1:
			doc[name] = ff.Values[0]
		default:
			doc[name] = ff.Values
		}
	}
	return doc
}

type Sort struct {
	AttrName  string
	Ascending bool
}

// SortSpec is applied in order; later entries break ties.
type SortSpec []Sort

type Projection struct {
	Include []string
	Exclude []string
}

type Pagination struct {
	Page  int
	Limit int
	Skip  int
}

// ListQuery is the query handle narrowed by the list features and
// executed by the DataStore. Nil facets are not applied.
type ListQuery struct {
	Filter     FilterSpec
	Sort       SortSpec
	Projection *Projection
	Pagination *Pagination
}
