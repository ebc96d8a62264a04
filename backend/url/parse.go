package url

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

func ParseInt(name string, values url.Values, result *int) (err error) {
	intStr := values.Get(name)
	if intStr != "" {
		*result, err = strconv.Atoi(intStr)
		return err
	}
	return
}

// ParseIntRange parses like ParseInt and rejects values outside [min, max].
func ParseIntRange(name string, values url.Values, min, max int, result *int) error {
	var value = *result
	if err := ParseInt(name, values, &value); err != nil {
		return err
	}
	if value < min || value > max {
		return fmt.Errorf("%s must be within [%d, %d], got %d", name, min, max, value)
	}
	*result = value
	return nil
}

func ParseBool(name string, values url.Values, result *bool) (err error) {
	boolStr := values.Get(name)
	if boolStr != "" {
		*result, err = strconv.ParseBool(boolStr)
		return err
	}
	return
}

// ParseList splits a comma separated parameter, dropping empty entries.
func ParseList(name string, values url.Values, result *[]string) {
	listStr := values.Get(name)
	if listStr == "" {
		return
	}
	var list []string
	for _, entry := range strings.Split(listStr, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			list = append(list, entry)
		}
	}
	*result = list
}
