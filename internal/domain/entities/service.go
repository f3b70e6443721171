package entities

// Service is one entry of the public catalog.
type Service struct {
	ID              string           `json:"id" yaml:"id"`
	Title           string           `json:"title" yaml:"title"`
	Tagline         string           `json:"tagline" yaml:"tagline"`
	Description     string           `json:"description" yaml:"description"`
	LongDescription string           `json:"longDescription,omitempty" yaml:"long_description"`
	Features        []string         `json:"features" yaml:"features"`
	Process         []ProcessStep    `json:"process,omitempty" yaml:"process"`
	Packages        []ServicePackage `json:"packages,omitempty" yaml:"packages"`
	Pricing         string           `json:"pricing,omitempty" yaml:"pricing"`
	Image           string           `json:"image" yaml:"image"`
}

type ServicePackage struct {
	Name      string   `json:"name" yaml:"name"`
	Price     string   `json:"price" yaml:"price"`
	Duration  string   `json:"duration" yaml:"duration"`
	Revisions string   `json:"revisions" yaml:"revisions"`
	Features  []string `json:"features" yaml:"features"`
	Popular   bool     `json:"popular,omitempty" yaml:"popular"`
}

type ProcessStep struct {
	Step        string `json:"step" yaml:"step"`
	Description string `json:"description" yaml:"description"`
}

// FindPackage looks a package up by exact name.
func (s Service) FindPackage(name string) (ServicePackage, bool) {
	for _, p := range s.Packages {
		if p.Name == name {
			return p, true
		}
	}
	return ServicePackage{}, false
}
