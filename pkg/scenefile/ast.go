package scenefile

import "strings"

// File represents a complete scene description file.
// A file contains exactly one scene block.
type File struct {
	Scene *SceneDecl `parser:"@@"`
}

// SceneDecl is the top-level scene block.
// Example: scene "demo" { ... }
type SceneDecl struct {
	Name    string        `parser:"KwScene @String LBrace"`
	Objects []*ObjectDecl `parser:"@@* RBrace"`
}

// ObjectDecl is one rectangle declaration.
// Example: rect hero at 10, 20 size 40 x 30 rotate 45 z 2 selected
type ObjectDecl struct {
	ID       string   `parser:"KwRect @( Ident | KwX | KwZ )"`
	X        float64  `parser:"KwAt @Number Comma"`
	Y        float64  `parser:"@Number"`
	Width    float64  `parser:"KwSize @Number KwX"`
	Height   float64  `parser:"@Number"`
	Rotation *float64 `parser:"( KwRotate @Number )?"`
	ZIndex   *int     `parser:"( KwZ @Number )?"`
	Selected bool     `parser:"@KwSelected?"`
}

// SceneName returns the scene name with the surrounding quotes removed.
func (s *SceneDecl) SceneName() string {
	return strings.Trim(s.Name, `"`)
}
