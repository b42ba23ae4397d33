package z3r

import "github.com/shiroemons/go-sramr/pkg/sram"

// EquipmentCatalog は所持品と現在のステータスのカタログ。
// アイテムの所持フラグは0か1のみを受け付けます。
var EquipmentCatalog = sram.MustCatalog([]sram.Descriptor{
	sram.Number("current rupees", 0x362, 16, 0),
	sram.Number("current arrows", 0x377, 8, 0),
	sram.Number("current bombs", 0x343, 8, 0),
	sram.Number("current health", 0x36D, 8, 0),
	sram.Number("current magic", 0x36E, 8, 0),
	sram.Number("magic consumption", 0x37B, 8, 0),
	sram.Number("goal items", 0x418, 8, 0),
	sram.Number("bomb upgrades", 0x370, 8, 0),
	sram.Number("arrow upgrades", 0x371, 8, 0),

	sram.Flag("fire rod", 0x345, 8, 0),
	sram.Flag("ice rod", 0x346, 8, 0),
	sram.Flag("bombos", 0x347, 8, 0),
	sram.Flag("ether", 0x348, 8, 0),
	sram.Flag("quake", 0x349, 8, 0),
	sram.Flag("lamp", 0x34A, 8, 0),
	sram.Flag("hammer", 0x34B, 8, 0),
	sram.Flag("hookshot", 0x342, 8, 0),
	sram.Flag("bug net", 0x34D, 8, 0),
	sram.Flag("book", 0x34E, 8, 0),
	sram.Flag("somaria", 0x350, 8, 0),
	sram.Flag("byrna", 0x351, 8, 0),
	sram.Flag("cape", 0x352, 8, 0),
	sram.Number("mirror", 0x353, 8, 0),
	sram.Number("gloves", 0x354, 8, 0),
	sram.Flag("boots", 0x355, 8, 0),
	sram.Flag("flippers", 0x356, 8, 0),
	sram.Flag("moon pearl", 0x357, 8, 0),
	sram.Number("sword", 0x359, 8, 0),
	sram.Number("shield", 0x35A, 8, 0),
	sram.Number("mail", 0x35B, 8, 0),

	sram.Number("bottle 1", 0x35C, 8, 0),
	sram.Number("bottle 2", 0x35D, 8, 0),
	sram.Number("bottle 3", 0x35E, 8, 0),
	sram.Number("bottle 4", 0x35F, 8, 0),

	// 0x38C: 入れ替え可能なアイテムのビットフラグ
	sram.Flag("blue boomerang", 0x38C, 1, 7),
	sram.Flag("red boomerang", 0x38C, 1, 6),
	sram.Flag("mushroom current", 0x38C, 1, 5).AsHidden(),
	sram.Flag("powder", 0x38C, 1, 4),
	sram.Flag("mushroom past", 0x38C, 1, 3).AsHidden(),
	sram.Flag("shovel", 0x38C, 1, 2),
	sram.Flag("flute inactive", 0x38C, 1, 1).AsHidden(),
	sram.Flag("flute active", 0x38C, 1, 0).AsHidden(),

	// 0x38E: 弓のビットフラグ
	sram.Flag("bow flag", 0x38E, 1, 7).AsHidden(),
	sram.Flag("silver bow flag", 0x38E, 1, 6).AsHidden(),
	sram.Flag("second progressive bow flag", 0x38E, 1, 5).AsHidden(),

	sram.Flag("green pendant", 0x374, 1, 2),
	sram.Flag("blue pendant", 0x374, 1, 1),
	sram.Flag("red pendant", 0x374, 1, 0),
	sram.Flag("crystal 1", 0x37A, 1, 1),
	sram.Flag("crystal 2", 0x37A, 1, 4),
	sram.Flag("crystal 3", 0x37A, 1, 6),
	sram.Flag("crystal 4", 0x37A, 1, 5),
	sram.Flag("crystal 5", 0x37A, 1, 2),
	sram.Flag("crystal 6", 0x37A, 1, 0),
	sram.Flag("crystal 7", 0x37A, 1, 3),
},
	sram.CountNonZero("bottles", "bottle 1", "bottle 2", "bottle 3", "bottle 4"),
	sram.AnyOf("bow", "bow flag", "silver bow flag"),
	sram.AnyOf("silver arrows", "silver bow flag", "second progressive bow flag"),
	sram.AnyOf("mushroom", "mushroom current", "mushroom past"),
	sram.AnyOf("mushroom turned in", "mushroom past"),
	sram.AnyOf("flute", "flute inactive", "flute active"),
)
