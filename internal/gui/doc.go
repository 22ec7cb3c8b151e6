// Package gui is the raylib window front end.
package gui
