package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"gorm.io/datatypes"

	"github.com/ehc32/Hostal-Acuario-sub000/models"
)

// Import rows come from spreadsheets exported with Spanish or English
// headers; each output field probes an ordered alias list and takes the
// first non-empty hit.
var (
	importTitleKeys       = []string{"titulo", "título", "title", "nombre", "name"}
	importDescriptionKeys = []string{"descripcion", "descripción", "description", "detalle"}
	importPriceKeys       = []string{"precio", "price", "precio_noche", "precioNoche", "tarifa"}
	importPriceHourKeys   = []string{"precio_hora", "precioHora", "price_hour", "priceHour"}
	importClimateKeys     = []string{"clima", "climate", "ambiente"}
	importImageKeys       = []string{"imagenes", "imágenes", "images", "fotos", "photos"}
	importAmenityKeys     = []string{"amenidades", "amenities", "servicios", "comodidades"}
	importHolderKeys      = []string{"titular", "holder", "responsable"}

	// defaultImportPrice is the hard-coded nightly rate for rows that carry
	// no price column at all.
	defaultImportPrice = 50000.0

	nonDigit = regexp.MustCompile(`[^0-9]`)
)

func stringField(row map[string]interface{}, keys []string) string {
	for _, k := range keys {
		if v, ok := row[k]; ok && v != nil {
			s := strings.TrimSpace(fmt.Sprintf("%v", v))
			if s != "" {
				return s
			}
		}
	}
	return ""
}

// numericField strips every non-digit character before parsing, so "100.000",
// "$ 100,000" and "100000 COP" all read as 100000. A raw value that leaves no
// digits is an error, while an absent column is not.
func numericField(row map[string]interface{}, keys []string) (float64, bool, error) {
	raw := stringField(row, keys)
	if raw == "" {
		return 0, false, nil
	}
	digits := nonDigit.ReplaceAllString(raw, "")
	if digits == "" {
		return 0, true, fmt.Errorf("unparseable number %q", raw)
	}
	n, err := strconv.ParseFloat(digits, 64)
	if err != nil {
		return 0, true, fmt.Errorf("unparseable number %q", raw)
	}
	return n, true, nil
}

func climateField(row map[string]interface{}) string {
	raw := strings.ToLower(stringField(row, importClimateKeys))
	switch {
	case raw == "":
		return models.ClimateNone
	case strings.Contains(raw, "aire"), strings.Contains(raw, "acondicionado"),
		raw == "ac", raw == "a/c", raw == "a.c.":
		return models.ClimateAire
	case strings.Contains(raw, "ventilador"), strings.Contains(raw, "fan"):
		return models.ClimateVentilador
	}
	return models.ClimateNone
}

// listField accepts either an actual array or a delimited string
// (comma, semicolon or newline separated).
func listField(row map[string]interface{}, keys []string) []string {
	var out []string
	push := func(s string) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}

	for _, k := range keys {
		v, ok := row[k]
		if !ok || v == nil {
			continue
		}
		switch typed := v.(type) {
		case []string:
			for _, item := range typed {
				push(item)
			}
		case []interface{}:
			for _, item := range typed {
				push(fmt.Sprintf("%v", item))
			}
		case string:
			normalized := strings.NewReplacer(";", ",", "\n", ",").Replace(typed)
			for _, item := range strings.Split(normalized, ",") {
				push(item)
			}
		default:
			push(fmt.Sprintf("%v", typed))
		}
		if len(out) > 0 {
			return out
		}
	}
	return out
}

// MapImportRow converts one loose row into a Room. The slug is left empty:
// the import path assigns its own collision-avoiding slug.
func MapImportRow(row map[string]interface{}) (models.Room, error) {
	var room models.Room

	title := stringField(row, importTitleKeys)
	if title == "" {
		return room, errors.New("missing title")
	}
	room.Title = title
	room.Description = stringField(row, importDescriptionKeys)
	room.Holder = stringField(row, importHolderKeys)
	room.Climate = climateField(row)

	price, present, err := numericField(row, importPriceKeys)
	if err != nil {
		return room, err
	}
	if !present {
		price = defaultImportPrice
	}
	room.Price = price

	priceHour, present, err := numericField(row, importPriceHourKeys)
	if err != nil {
		return room, err
	}
	if present {
		room.PriceHour = priceHour
	}

	images := listField(row, importImageKeys)
	if len(images) > models.MaxRoomImages {
		images = images[:models.MaxRoomImages]
	}
	if len(images) > 0 {
		encoded, _ := json.Marshal(images)
		room.Images = datatypes.JSON(encoded)
	}

	if amenities := listField(row, importAmenityKeys); len(amenities) > 0 {
		encoded, _ := json.Marshal(amenities)
		room.Amenities = datatypes.JSON(encoded)
	}

	return room, nil
}
