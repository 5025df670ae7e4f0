// Package model provides a validated record type. Applications declare a
// typed field shape with NewSchema and get validation on construction and on
// every assignment, plus serialization to a plain map via ToDict.
package model
