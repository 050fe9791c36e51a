package cmd

const rootLongDescription = `Regexrename mass-renames the entries of a directory with a regular
expression and a replacement template. The whole batch is planned and
checked for name collisions first; if any proposed name collides,
nothing is renamed, so the files never end up in an inconsistent state.

The template may reference capture groups with back-references:

  regexrename '^(.)(.)' '\2\1'    swap the first two characters

Examples:
  regexrename ^ prefix_           add "prefix_" to every name
  regexrename -n '[aeiou]' A      preview vowels replaced by A
  regexrename --cleanup           strip common unwanted characters`

const rulesLongDescription = `Print the rule table that --cleanup (or a --rules file) would apply,
one pattern/template pair per row, in evaluation order.`
