// This file is part of Ready.
//
// Ready is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Ready is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Ready.  If not, see <https://www.gnu.org/licenses/>.

package vic

import "image/color"

// Colour indexes.
const (
	Black = iota
	White
	Red
	Cyan
	Purple
	Green
	Blue
	Yellow
	Orange
	Brown
	LightRed
	DarkGrey
	Grey
	LightGreen
	LightBlue
	LightGrey
)

// Palette is the RGB equivalent of the 16 VIC-II colours. The values are
// those measured by Philip "Pepto" Timmermann.
var Palette = [16]color.RGBA{
	{0x00, 0x00, 0x00, 0xff},
	{0xff, 0xff, 0xff, 0xff},
	{0x68, 0x37, 0x2b, 0xff},
	{0x70, 0xa4, 0xb2, 0xff},
	{0x6f, 0x3d, 0x86, 0xff},
	{0x58, 0x8d, 0x43, 0xff},
	{0x35, 0x28, 0x79, 0xff},
	{0xb8, 0xc7, 0x6f, 0xff},
	{0x6f, 0x4f, 0x25, 0xff},
	{0x43, 0x39, 0x00, 0xff},
	{0x9a, 0x67, 0x59, 0xff},
	{0x44, 0x44, 0x44, 0xff},
	{0x6c, 0x6c, 0x6c, 0xff},
	{0x9a, 0xd2, 0x84, 0xff},
	{0x6c, 0x5e, 0xb5, 0xff},
	{0x95, 0x95, 0x95, 0xff},
}

// ColourNames is indexed by colour index.
var ColourNames = [16]string{
	"black", "white", "red", "cyan", "purple", "green", "blue", "yellow",
	"orange", "brown", "light red", "dark grey", "grey", "light green",
	"light blue", "light grey",
}
