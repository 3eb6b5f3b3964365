package gamedata

// EnemyDef defines an enemy type loaded from JSON.
type EnemyDef struct {
	ID   string `json:"id"`   // Unique identifier (e.g., "zombie")
	Name string `json:"name"` // Display name (e.g., "Zombie")
	Appearance
}

// EnemiesFile represents the structure of enemies.json.
type EnemiesFile struct {
	Enemies []EnemyDef `json:"enemies"`
}

// LoadEnemies loads enemy definitions from the embedded enemies.json file.
func LoadEnemies() ([]EnemyDef, error) {
	file, err := Load[EnemiesFile]("enemies.json")
	if err != nil {
		return nil, err
	}
	return file.Enemies, nil
}
