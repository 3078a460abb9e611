package bart

import (
	"encoding/xml"
	"fmt"
)

// Wire types for the ETD resource. Field tags follow the published schema;
// scalar values are located by tag name rather than position so a reordered
// response still decodes correctly.

type etdResponse struct {
	XMLName  xml.Name     `xml:"root"`
	Date     string       `xml:"date"`
	Time     string       `xml:"time"`
	Stations []etdStation `xml:"station"`
	Message  etdMessage   `xml:"message"`
}

type etdMessage struct {
	Error etdError `xml:"error"`
}

type etdError struct {
	Text    string `xml:"text"`
	Details string `xml:"details"`
}

type etdStation struct {
	Name         string           `xml:"name"`
	Abbreviation string           `xml:"abbr"`
	Destinations []etdDestination `xml:"etd"`
}

type etdDestination struct {
	Destination  string        `xml:"destination"`
	Abbreviation string        `xml:"abbreviation"`
	Limited      int           `xml:"limited"`
	Estimates    []etdEstimate `xml:"estimate"`
}

type etdEstimate struct {
	Minutes   string `xml:"minutes"`
	Platform  string `xml:"platform"`
	Direction string `xml:"direction"`
	Length    int    `xml:"length"`
	Color     string `xml:"color"`
	HexColor  string `xml:"hexcolor"`
	BikeFlag  int    `xml:"bikeflag"`
	Delay     int    `xml:"delay"`
}

// ParseError reports a response that is not a usable departure board: XML
// that does not decode, or a decoded body with no station element (the
// shape the API returns for an error such as an unknown orig code).
type ParseError struct {
	Reason     string
	APIMessage string // error text from the response body, when present
}

func (e *ParseError) Error() string {
	if e.APIMessage != "" {
		return fmt.Sprintf("parsing etd response: %s (api: %s)", e.Reason, e.APIMessage)
	}
	return "parsing etd response: " + e.Reason
}
