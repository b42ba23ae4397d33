package z3r

import "fmt"

// Labeler は装備の値を表示名に変換します。false の場合は「なし」を意味します
type Labeler func(v uint32) (string, bool)

// MagicConsumption は魔力消費量の表示名を返します
func MagicConsumption(v uint32) (string, bool) {
	switch v {
	case 0:
		return "Normal Magic", true
	case 1:
		return "1/2 Magic", true
	case 2:
		return "1/4 Magic", true
	}
	return "Unknown Magic Consumption", true
}

// Sword は剣の表示名を返します
func Sword(v uint32) (string, bool) {
	switch v {
	case 0:
		return "", false
	case 1:
		return "Fighter's Sword", true
	case 2:
		return "Master Sword", true
	case 3:
		return "Tempered Sword", true
	case 4:
		return "Gold Sword", true
	case 255:
		return "Swordless", true
	}
	return "Unknown Sword", true
}

// Shield は盾の表示名を返します
func Shield(v uint32) (string, bool) {
	switch v {
	case 0:
		return "", false
	case 1:
		return "Blue Shield", true
	case 2:
		return "Red Shield", true
	case 3:
		return "Mirror Shield", true
	}
	return "Unknown Shield", true
}

// Mail は鎧の表示名を返します
func Mail(v uint32) (string, bool) {
	switch v {
	case 0:
		return "Green Mail", true
	case 1:
		return "Blue Mail", true
	case 2:
		return "Red Mail", true
	}
	return "Unknown Mail", true
}

// Gloves は手袋の表示名を返します
func Gloves(v uint32) (string, bool) {
	switch v {
	case 0:
		return "", false
	case 1:
		return "Power Gloves", true
	case 2:
		return "Titan's Mitts", true
	}
	return "Unknown Gloves", true
}

// Mirror は鏡の表示名を返します
func Mirror(v uint32) (string, bool) {
	switch v {
	case 0:
		return "", false
	case 1:
		return "Mirror Scroll", true
	case 2:
		return "Magic Mirror", true
	}
	return "Unknown Mirror", true
}

// Bottle はビンの中身の表示名を返します
func Bottle(v uint32) (string, bool) {
	switch v {
	case 0:
		return "", false
	case 1:
		return "Mushroom", true
	case 2:
		return "Empty Bottle", true
	case 3:
		return "Red Potion", true
	case 4:
		return "Green Potion", true
	case 5:
		return "Blue Potion", true
	case 6:
		return "Fairy", true
	case 7:
		return "Bee", true
	case 8:
		return "Good Bee", true
	}
	return "Unknown Bottle", true
}

// Upgrade は爆弾・矢の所持数アップグレードの表示名を返します
func Upgrade(v uint32) (string, bool) {
	if v == 0 {
		return "", false
	}
	return fmt.Sprintf("+%d", v), true
}

var equipmentLabels = map[string]Labeler{
	"magic consumption": MagicConsumption,
	"sword":             Sword,
	"shield":            Shield,
	"mail":              Mail,
	"gloves":            Gloves,
	"mirror":            Mirror,
	"bottle 1":          Bottle,
	"bottle 2":          Bottle,
	"bottle 3":          Bottle,
	"bottle 4":          Bottle,
	"bomb upgrades":     Upgrade,
	"arrow upgrades":    Upgrade,
}

// EquipmentLabel は装備フィールド name の Labeler を返します
func EquipmentLabel(name string) (Labeler, bool) {
	l, ok := equipmentLabels[name]
	return l, ok
}
