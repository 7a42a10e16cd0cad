package domain

// DefaultWorkspaceDir is the directory all dependency working copies live
// under when no override is given.
const DefaultWorkspaceDir = "ThirdParty"

// DefaultRegistry returns the built-in dependency table for the Digital-Twin
// engine. Revisions are exact commits; bumping one is a deliberate edit here
// or in a manifest file, never an implicit "latest".
func DefaultRegistry() Registry {
	return Registry{
		{
			Name:     "pybind11",
			URL:      "https://github.com/pybind/pybind11.git",
			Revision: "42cda7570e658beadc036be7848b60e64c374597",
		},
		{
			Name:     "volk",
			URL:      "https://github.com/zeux/volk.git",
			Revision: "4d2dba50ae419d0ad34ef27edcb845b749aaebf4",
		},
		{
			Name:     "glm",
			URL:      "https://github.com/g-truc/glm.git",
			Revision: "a583c59e1616a628b18195869767ea4d6faca5f4",
		},
	}
}
