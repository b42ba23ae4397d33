package z3r

import "github.com/shiroemons/go-sramr/pkg/sram"

// StatsCatalog は統計情報（収集率、各ダンジョンのアイテム数、カウンタ、経過時間）のカタログ
var StatsCatalog = sram.MustCatalog([]sram.Descriptor{
	sram.Fraction("collection rate", 0x423, 8, 0, 216),
	sram.Number("chest locations", 0x442, 8, 0),
	sram.Fraction("y items", 0x421, 5, 3, 27),
	sram.Fraction("a items", 0x421, 3, 0, 5),
	sram.Fraction("swords", 0x422, 3, 5, 4),
	sram.Fraction("shields", 0x422, 2, 3, 3),
	sram.Fraction("mails", 0x424, 2, 6, 3),
	sram.Fraction("capacity upgrades", 0x452, 4, 0, 15),
	sram.Fraction("heart containers", 0x429, 4, 4, 11),
	sram.Fraction("heart pieces", 0x448, 8, 0, 24),
	sram.Fraction("maps", 0x428, 4, 4, 12),
	sram.Fraction("compasses", 0x428, 4, 0, 11),
	sram.Fraction("small keys", 0x424, 6, 0, 61),
	sram.Fraction("big keys", 0x427, 4, 4, 12),
	sram.Fraction("big chests", 0x427, 4, 0, 11),
	sram.Fraction("pendants", 0x429, 2, 0, 3),
	sram.Fraction("crystals", 0x422, 3, 0, 7),

	// ダンジョンごとのアイテム数
	sram.Fraction("hyrule castle", 0x434, 4, 4, 8),
	sram.Fraction("eastern palace", 0x436, 3, 0, 6),
	sram.Fraction("desert palace", 0x435, 3, 5, 6),
	sram.Fraction("tower of hera", 0x435, 3, 2, 5),
	sram.Fraction("castle tower", 0x435, 2, 0, 2),
	sram.Fraction("palace of darkness", 0x434, 4, 0, 14),
	sram.Fraction("swamp palace", 0x439, 4, 0, 10),
	sram.Fraction("skull woods", 0x437, 4, 4, 8),
	sram.Fraction("thieves town", 0x437, 4, 0, 8),
	sram.Fraction("ice palace", 0x438, 4, 4, 8),
	sram.Fraction("misery mire", 0x438, 4, 0, 8),
	sram.Fraction("turtle rock", 0x439, 4, 4, 12),
	sram.Fraction("ganons tower", 0x436, 5, 3, 27),
	sram.Fraction("ganons tower big key", 0x42A, 5, 0, 22),

	// 剣の段階ごとのボス撃破数
	sram.Fraction("swordless bosses", 0x452, 4, 4, 13),
	sram.Fraction("fighter sword bosses", 0x426, 4, 4, 13),
	sram.Fraction("master sword bosses", 0x426, 4, 0, 13),
	sram.Fraction("tempered sword bosses", 0x425, 4, 4, 13),
	sram.Fraction("golden sword bosses", 0x425, 4, 0, 13),

	sram.Number("locations pre boots", 0x432, 8, 0),
	sram.Number("locations pre mirror", 0x433, 8, 0),
	sram.Number("bonks", 0x420, 8, 0),
	sram.Number("overworld mirrors", 0x43A, 8, 0),
	sram.Number("underworld mirrors", 0x43B, 8, 0),
	sram.Number("times fluted", 0x44B, 8, 0),
	sram.Number("screen transitions", 0x43C, 16, 0),
	sram.Number("rupees spent", 0x42B, 16, 0),
	sram.Number("save and quits", 0x42D, 8, 0),
	sram.Number("deaths", 0x449, 8, 0),
	sram.Number("faerie revivals", 0x453, 8, 0),

	sram.Duration("total time", 0x43E),
	sram.Duration("menu time", 0x444),
	sram.Duration("loop time", 0x42E).AsHidden(),
	sram.Duration("first sword", 0x458),
	sram.Duration("boots found", 0x45C),
	sram.Duration("flute found", 0x460),
	sram.Duration("mirror found", 0x464),
},
	sram.Difference("other locations", "collection rate", "chest locations"),
	sram.Difference("lag time", "total time", "loop time"),
)
