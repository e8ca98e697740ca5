// Package gui runs the simulation in an ebiten window. Everything but
// PanelWidth requires the ebiten build tag.
package gui

// PanelWidth is the width of the parameter panel in pixels.
const PanelWidth = 180
