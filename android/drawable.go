package android

import (
	"encoding/xml"
	"errors"
	"io"

	"github.com/splashgen/splashgen/gradient"
)

const androidNS = "http://schemas.android.com/apk/res/android"

var errDegenerateGradient = errors.New("shape drawable needs a gradient with at least two stops")

// ShapeDescriptor is the lossy two-color form of a gradient that a
// shape drawable can express. Android's <gradient> element takes a
// single start and end color, so interior stops are discarded.
type ShapeDescriptor struct {
	Angle      int
	StartColor gradient.Color
	EndColor   gradient.Color
}

// NewShapeDescriptor reduces g to its drawable form: first stop,
// last stop, snapped compass angle. A gradient with fewer than two
// stops is rejected here rather than producing a broken resource.
func NewShapeDescriptor(g *gradient.Gradient) (ShapeDescriptor, error) {
	if g == nil || len(g.Stops) < 2 {
		return ShapeDescriptor{}, errDegenerateGradient
	}
	return ShapeDescriptor{
		Angle:      CompassAngle(g.Angle),
		StartColor: g.Stops[0].Color,
		EndColor:   g.Stops[len(g.Stops)-1].Color,
	}, nil
}

type shapeElement struct {
	XMLName  xml.Name         `xml:"shape"`
	NS       string           `xml:"xmlns:android,attr"`
	Shape    string           `xml:"android:shape,attr"`
	Gradient *gradientElement `xml:"gradient,omitempty"`
	Solid    *solidElement    `xml:"solid,omitempty"`
}

type gradientElement struct {
	Type       string `xml:"android:type,attr"`
	Angle      int    `xml:"android:angle,attr"`
	StartColor string `xml:"android:startColor,attr"`
	EndColor   string `xml:"android:endColor,attr"`
}

type solidElement struct {
	Color string `xml:"android:color,attr"`
}

// WriteShapeDrawable emits the res/drawable XML for d.
func WriteShapeDrawable(w io.Writer, d ShapeDescriptor) error {
	return writeDrawable(w, shapeElement{
		NS:    androidNS,
		Shape: "rectangle",
		Gradient: &gradientElement{
			Type:       "linear",
			Angle:      d.Angle,
			StartColor: d.StartColor.Hex(),
			EndColor:   d.EndColor.Hex(),
		},
	})
}

// WriteSolidDrawable emits a single-color drawable, used when a
// gradient expression could not be parsed.
func WriteSolidDrawable(w io.Writer, c gradient.Color) error {
	return writeDrawable(w, shapeElement{
		NS:    androidNS,
		Shape: "rectangle",
		Solid: &solidElement{Color: c.Hex()},
	})
}

func writeDrawable(w io.Writer, el shapeElement) error {
	if _, err := io.WriteString(w, xml.Header); err != nil {
		return err
	}
	enc := xml.NewEncoder(w)
	enc.Indent("", "    ")
	if err := enc.Encode(el); err != nil {
		return err
	}
	// Encode leaves no trailing newline
	_, err := io.WriteString(w, "\n")
	return err
}
