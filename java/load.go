package java

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ModelFile is the on-disk form of a set of type declarations.
//
//	modules:
//	  - name: com.example.app
//	    exports: [{package: com.example.api}]
//	classes:
//	  - name: com.example.api.Shape
//	    kind: interface
//	    visibility: public
//	    included: true
//	    methods:
//	      - name: area
//	        returnType: double
//	        javadoc: Returns the area.
type ModelFile struct {
	Modules []*ModuleModel `yaml:"modules,omitempty"`
	Classes []*ClassModel  `yaml:"classes"`
}

// ReadModel decodes a model file. Unknown keys are rejected. A stream of
// several YAML documents is merged into one model.
func ReadModel(r io.Reader) (*ModelFile, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	result := &ModelFile{}
	for {
		var doc ModelFile
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decode model: %w", err)
		}
		result.Modules = append(result.Modules, doc.Modules...)
		result.Classes = append(result.Classes, doc.Classes...)
	}
	return result, nil
}

// LoadModelFiles reads every named model file and links the combined
// declarations into a Universe.
func LoadModelFiles(paths ...string) (*Universe, error) {
	combined := &ModelFile{}
	for _, path := range paths {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		mf, err := ReadModel(f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		combined.Modules = append(combined.Modules, mf.Modules...)
		combined.Classes = append(combined.Classes, mf.Classes...)
	}
	return combined.Universe()
}

// Universe links the file's declarations.
func (mf *ModelFile) Universe() (*Universe, error) {
	return NewUniverse(mf.Classes, mf.Modules)
}
