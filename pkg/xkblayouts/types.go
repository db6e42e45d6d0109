package xkblayouts

import "encoding/xml"

// XkbConfigRegistry mirrors the layout part of xkeyboard-config's
// evdev.xml.
type XkbConfigRegistry struct {
	XMLName    xml.Name   `xml:"xkbConfigRegistry"`
	ModelList  ModelList  `xml:"modelList"`
	LayoutList LayoutList `xml:"layoutList"`
}

type ConfigItem struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

type Model struct {
	ConfigItem ConfigItem `xml:"configItem"`
}

type ModelList struct {
	Model []Model `xml:"model"`
}

type Variant struct {
	ConfigItem ConfigItem `xml:"configItem"`
}

type VariantList struct {
	Variant []Variant `xml:"variant"`
}

type Layout struct {
	ConfigItem  ConfigItem  `xml:"configItem"`
	VariantList VariantList `xml:"variantList"`
}

type LayoutList struct {
	Layout []Layout `xml:"layout"`
}
