package career

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// Load reads the career data document from a JSON file.
func Load(path string) (data Data, err error) {
	// Read file
	var fileData []byte
	fileData, err = os.ReadFile(path)
	if err != nil {
		err = errors.Wrapf(err, "failed to read career data file: %s", path)
		return data, err
	}

	if strings.TrimSpace(string(fileData)) == "" {
		err = errors.Errorf("career data file is empty: %s", path)
		return data, err
	}

	// Parse JSON
	err = json.Unmarshal(fileData, &data)
	if err != nil {
		err = errors.Wrapf(err, "failed to parse career data JSON: %s", path)
		return data, err
	}

	// Validate data
	err = data.Validate()
	if err != nil {
		err = errors.Wrap(err, "career data validation failed")
		return data, err
	}

	return data, err
}

// LoadOrSample reads the career data document, substituting the built-in
// sample set when the file is missing, empty, or invalid. It never fails.
func LoadOrSample(path string) (data Data) {
	loaded, err := Load(path)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"path":   path,
			"reason": err.Error(),
		}).Warn("career data unavailable, using built-in sample set")
		data = Sample()
		return data
	}

	data = loaded
	return data
}

// Validate checks that the career data is well-formed.
func (d *Data) Validate() (err error) {
	if len(d.Experiences) == 0 && len(d.Projects) == 0 {
		err = errors.New("no experiences or projects found in career data")
		return err
	}

	// Validate each experience has required fields
	for i, exp := range d.Experiences {
		if exp.Company == "" {
			err = errors.Errorf("experience at index %d missing company", i)
			return err
		}
		if exp.Description == "" {
			err = errors.Errorf("experience %s missing description", exp.Company)
			return err
		}
	}

	for i, proj := range d.Projects {
		if proj.Name == "" {
			err = errors.Errorf("project at index %d missing name", i)
			return err
		}
		if proj.Description == "" {
			err = errors.Errorf("project %s missing description", proj.Name)
			return err
		}
	}

	return err
}

// Write saves the career data document as indented JSON.
func (d *Data) Write(path string) (err error) {
	var data []byte
	data, err = json.MarshalIndent(d, "", "  ")
	if err != nil {
		err = errors.Wrap(err, "failed to marshal career data")
		return err
	}

	err = os.WriteFile(path, data, 0600)
	if err != nil {
		err = errors.Wrapf(err, "failed to write career data file: %s", path)
		return err
	}

	return err
}
